package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleBackgroundMsg(msg); handled {
		return m, cmd
	}

	// Forms need every remaining message, not just keys
	if m.forms.form != nil {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.resize(size)
		}
		return m, m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.resize(msg)
	}
	return m, nil
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.UiState.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.search.Width = max(msg.Width/3, 20)
	m.syncSelection()
}

// handleBackgroundMsg handles messages produced by commands rather than the user
func (m *Model) handleBackgroundMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		m.AppState.SetData(msg.tasks, msg.categories)
		m.syncSelection()
		return nil, true

	case loadFailedMsg:
		if m.Ctx.Err() != nil {
			// Shutting down
			return nil, true
		}
		m.App.Logger().Error("failed to load data", "error", msg.err)
		m.AppState.SetErr(msg.err)
		return nil, true

	case storeChangedMsg:
		m.App.Logger().Debug("store changed",
			"type", msg.event.Type,
			"entity", msg.event.Entity,
			"count", msg.event.Count,
		)
		return tea.Batch(m.loadData(), m.listenForEvents()), true

	case mutationDoneMsg:
		var cmds []tea.Cmd
		if msg.toast != "" {
			cmds = append(cmds, m.notify(msg.level, msg.toast))
		}
		if m.EventChan == nil {
			cmds = append(cmds, m.loadData())
		}
		return tea.Batch(cmds...), true

	case mutationFailedMsg:
		m.App.Logger().Error("mutation failed", "action", msg.action, "error", msg.err)
		if models.IsNotFound(msg.err) {
			return tea.Batch(m.notify(state.LevelWarning, "That item no longer exists"), m.loadData()), true
		}
		return m.notify(state.LevelError, fmt.Sprintf("Failed to %s", msg.action)), true

	case toastExpiredMsg:
		m.NotificationState.Dismiss(msg.id)
		return nil, true
	}
	return nil, false
}

// notify shows a toast and schedules its expiry
func (m *Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	n := m.NotificationState.Add(level, message)
	return expireToast(n, m.NotificationState.TTL())
}

// handleKeyMsg dispatches key messages to the appropriate mode handler
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.UiState.Mode() {
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" || key.Matches(msg, m.keys.Help, m.keys.Quit) {
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

func (m *Model) handleDetailMode(msg tea.KeyMsg) tea.Cmd {
	task := m.AppState.TaskByID(m.UiState.DetailTaskID())
	if task == nil {
		m.UiState.CloseDetail()
		return nil
	}

	switch {
	case msg.String() == "esc", key.Matches(msg, m.keys.View):
		m.UiState.CloseDetail()
	case key.Matches(msg, m.keys.Edit):
		m.UiState.CloseDetail()
		return m.openEditForm(task)
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleTaskCmd(task.ID)
	}
	return nil
}

func (m *Model) handleSearchMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.UiState.SetArchiveQuery("")
		m.search.Blur()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "enter":
		m.search.Blur()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.UiState.SetArchiveQuery(m.search.Value())
	m.syncSelection()
	return cmd
}
