package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/taskflow/internal/config"
)

// keyMap mirrors config.KeyMappings as bubbles bindings for the help view
type keyMap struct {
	Add, Edit, Delete, Toggle, View, MoveUp, MoveDown key.Binding
	NewCategory                                       key.Binding
	CyclePriority, CycleStatus, CycleCategory, Clear  key.Binding
	Search, Restore, ClearArchive                     key.Binding
	Up, Down, NextPage, PrevPage, Pages               key.Binding
	Retry, Help, Quit                                 key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(k, help string) key.Binding {
		label := k
		if k == " " {
			label = "space"
		}
		return key.NewBinding(key.WithKeys(k), key.WithHelp(label, help))
	}

	return keyMap{
		Add:      bind(km.AddTask, "add task"),
		Edit:     bind(km.EditTask, "edit"),
		Delete:   bind(km.DeleteTask, "delete"),
		Toggle:   bind(km.ToggleTask, "toggle done"),
		View:     bind(km.ViewTask, "details"),
		MoveUp:   bind(km.MoveTaskUp, "move up"),
		MoveDown: bind(km.MoveTaskDown, "move down"),

		NewCategory: bind(km.CreateCategory, "new category"),

		CyclePriority: bind(km.CyclePriority, "priority filter"),
		CycleStatus:   bind(km.CycleStatus, "status filter"),
		CycleCategory: bind(km.CycleCategory, "category filter"),
		Clear:         bind(km.ClearFilters, "clear filters"),

		Search:       bind(km.Search, "search archive"),
		Restore:      bind(km.RestoreTask, "restore"),
		ClearArchive: bind(km.ClearArchive, "clear archive"),

		Up:       key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "up")),
		Down:     key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "down")),
		NextPage: bind(km.NextPage, "next page"),
		PrevPage: bind(km.PrevPage, "prev page"),
		Pages:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to page")),

		Retry: bind(km.Retry, "retry"),
		Help:  bind(km.ShowHelp, "help"),
		Quit:  key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp is shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.View, k.NextPage, k.Help, k.Quit}
}

// FullHelp is shown on the help screen, one column per group
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage, k.Pages},
		{k.Add, k.Edit, k.Delete, k.Toggle, k.View, k.MoveUp, k.MoveDown},
		{k.CyclePriority, k.CycleStatus, k.CycleCategory, k.Clear, k.NewCategory},
		{k.Search, k.Restore, k.ClearArchive, k.Retry, k.Help, k.Quit},
	}
}
