package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/huhforms"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// refreshDebounce collapses bursts of store events into one reload
const refreshDebounce = 100 * time.Millisecond

// formKind identifies which form is open in FormMode or ConfirmMode
type formKind int

const (
	noForm formKind = iota
	quickAddForm
	editTaskForm
	newCategoryForm
	deleteTaskConfirm
	clearArchiveConfirm
)

// formState holds the open huh form and the values bound to it
type formState struct {
	form     *huh.Form
	kind     formKind
	task     *huhforms.TaskFormValues
	category *huhforms.CategoryFormValues
	confirm  bool
	targetID int
}

// Model represents the application state for the TUI
type Model struct {
	App    *app.App
	Config *config.Config
	Ctx    context.Context
	cancel context.CancelFunc

	AppState          *state.AppState
	UiState           *state.UIState
	NotificationState *state.NotificationState

	keys   keyMap
	help   help.Model
	search textinput.Model
	forms  *formState

	// EventChan delivers debounced store changes; nil when the bus is closed
	EventChan <-chan events.Event
}

// New creates the model and subscribes it to the app's change bus
func New(ctx context.Context, application *app.App, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	ctx, cancel := context.WithCancel(ctx)

	components.InitStyles(cfg.ColorScheme)

	search := textinput.New()
	search.Placeholder = "Search completed tasks..."
	search.Prompt = "/ "
	search.CharLimit = 100

	m := &Model{
		App:               application,
		Config:            cfg,
		Ctx:               ctx,
		cancel:            cancel,
		AppState:          state.NewAppState(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(application.Now),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		search:            search,
		forms:             &formState{},
	}

	sub, err := application.Events.Subscribe(ctx)
	if err != nil {
		application.Logger().Warn("change bus unavailable, views reload after each write", "error", err)
	} else {
		m.EventChan = events.Debounce(ctx, sub, refreshDebounce)
	}

	return m
}

// Init starts the first load and the change listener
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadData(), m.listenForEvents())
}

// Close cancels the model context, ending the bus subscription
func (m *Model) Close() {
	m.cancel()
}

// visibleTasks returns the tasks shown on the current page, in display order
func (m *Model) visibleTasks() []*models.Task {
	now := m.App.Now()
	tasks := m.AppState.Tasks()
	criteria := m.UiState.Criteria()

	switch m.UiState.Page() {
	case state.PageToday:
		return categoryOnly(criteria).Apply(filterTodayTasks(tasks, now))
	case state.PageUpcoming:
		var flat []*models.Task
		for _, g := range m.upcomingGroups() {
			flat = append(flat, g.Tasks...)
		}
		return flat
	case state.PageArchive:
		return archiveTasks(tasks, m.UiState.ArchiveQuery())
	default:
		return criteria.Apply(orderedTasks(tasks))
	}
}

// selectedTask returns the task under the cursor, or nil
func (m *Model) selectedTask() *models.Task {
	tasks := m.visibleTasks()
	idx := m.UiState.Selected()
	if idx < 0 || idx >= len(tasks) {
		return nil
	}
	return tasks[idx]
}

// syncSelection keeps the cursor inside the list and on screen
func (m *Model) syncSelection() {
	m.UiState.ClampSelection(len(m.visibleTasks()))
	m.UiState.EnsureVisible(m.listRows())
}

// defaultCategoryID picks the category for a quick-added task
func (m *Model) defaultCategoryID() int {
	if id := m.UiState.Criteria().CategoryID; id != nil {
		return *id
	}
	if cats := m.AppState.Categories(); len(cats) > 0 {
		return cats[0].ID
	}
	return 0
}

func (m *Model) categoryName(id *int) string {
	if id == nil {
		return ""
	}
	if c := m.AppState.CategoryByID(*id); c != nil {
		return c.Name
	}
	return "unknown"
}
