package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask      string `yaml:"add_task"`
	EditTask     string `yaml:"edit_task"`
	DeleteTask   string `yaml:"delete_task"`
	ToggleTask   string `yaml:"toggle_task"`
	ViewTask     string `yaml:"view_task"`
	MoveTaskUp   string `yaml:"move_task_up"`
	MoveTaskDown string `yaml:"move_task_down"`

	// Categories
	CreateCategory string `yaml:"create_category"`

	// Filters
	CyclePriority string `yaml:"cycle_priority"`
	CycleStatus   string `yaml:"cycle_status"`
	CycleCategory string `yaml:"cycle_category"`
	ClearFilters  string `yaml:"clear_filters"`

	// Archive
	Search       string `yaml:"search"`
	RestoreTask  string `yaml:"restore_task"`
	ClearArchive string `yaml:"clear_archive"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`
	NextPage string `yaml:"next_page"`
	PrevPage string `yaml:"prev_page"`

	// Other
	Retry    string `yaml:"retry"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:      "a",
		EditTask:     "e",
		DeleteTask:   "d",
		ToggleTask:   " ",
		ViewTask:     "enter",
		MoveTaskUp:   "K",
		MoveTaskDown: "J",

		// Categories
		CreateCategory: "N",

		// Filters
		CyclePriority: "p",
		CycleStatus:   "s",
		CycleCategory: "c",
		ClearFilters:  "x",

		// Archive
		Search:       "/",
		RestoreTask:  "r",
		ClearArchive: "X",

		// Navigation
		PrevTask: "k",
		NextTask: "j",
		NextPage: "tab",
		PrevPage: "shift+tab",

		// Other
		Retry:    "R",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()

	pairs := []struct {
		dst *string
		def string
	}{
		{&k.AddTask, d.AddTask},
		{&k.EditTask, d.EditTask},
		{&k.DeleteTask, d.DeleteTask},
		{&k.ToggleTask, d.ToggleTask},
		{&k.ViewTask, d.ViewTask},
		{&k.MoveTaskUp, d.MoveTaskUp},
		{&k.MoveTaskDown, d.MoveTaskDown},
		{&k.CreateCategory, d.CreateCategory},
		{&k.CyclePriority, d.CyclePriority},
		{&k.CycleStatus, d.CycleStatus},
		{&k.CycleCategory, d.CycleCategory},
		{&k.ClearFilters, d.ClearFilters},
		{&k.Search, d.Search},
		{&k.RestoreTask, d.RestoreTask},
		{&k.ClearArchive, d.ClearArchive},
		{&k.PrevTask, d.PrevTask},
		{&k.NextTask, d.NextTask},
		{&k.NextPage, d.NextPage},
		{&k.PrevPage, d.PrevPage},
		{&k.Retry, d.Retry},
		{&k.ShowHelp, d.ShowHelp},
		{&k.Quit, d.Quit},
	}
	for _, p := range pairs {
		if *p.dst == "" {
			*p.dst = p.def
		}
	}
}
