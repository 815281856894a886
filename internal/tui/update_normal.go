package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// handleNormalMode handles keys while browsing a page
func (m *Model) handleNormalMode(msg tea.KeyMsg) tea.Cmd {
	// Global keys work even while loading or after a failed load
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
		return nil
	case key.Matches(msg, m.keys.Retry) && m.AppState.Err() != nil:
		m.AppState.SetLoading()
		return m.loadData()
	}

	if m.AppState.Loading() || m.AppState.Err() != nil {
		return nil
	}

	if cmd, handled := m.handleNavigation(msg); handled {
		return cmd
	}
	if cmd, handled := m.handleFilterKeys(msg); handled {
		return cmd
	}

	task := m.selectedTask()

	switch {
	case key.Matches(msg, m.keys.Add):
		return m.openQuickAddForm()

	case key.Matches(msg, m.keys.NewCategory):
		return m.openCategoryForm()

	case key.Matches(msg, m.keys.Search) && m.UiState.Page() == state.PageArchive:
		m.UiState.SetMode(state.SearchMode)
		m.search.SetValue(m.UiState.ArchiveQuery())
		return m.search.Focus()

	case key.Matches(msg, m.keys.ClearArchive) && m.UiState.Page() == state.PageArchive:
		return m.openClearArchiveConfirm()
	}

	if task == nil {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleTaskCmd(task.ID)

	case key.Matches(msg, m.keys.View):
		m.UiState.OpenDetail(task.ID)
		return nil

	case key.Matches(msg, m.keys.Edit):
		return m.openEditForm(task)

	case key.Matches(msg, m.keys.Delete):
		return m.openDeleteConfirm(task)

	case key.Matches(msg, m.keys.Restore) && m.UiState.Page() == state.PageArchive:
		return m.restoreTaskCmd(task.ID)

	case key.Matches(msg, m.keys.MoveUp):
		return m.moveSelectedTask(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m.moveSelectedTask(1)
	}
	return nil
}

// handleNavigation moves between pages and rows
func (m *Model) handleNavigation(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.UiState.MoveSelection(-1, len(m.visibleTasks()))
	case key.Matches(msg, m.keys.Down):
		m.UiState.MoveSelection(1, len(m.visibleTasks()))
	case key.Matches(msg, m.keys.NextPage):
		m.UiState.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		m.UiState.PrevPage()
	case key.Matches(msg, m.keys.Pages):
		m.UiState.SetPage(state.Page(msg.String()[0] - '1'))
	default:
		return nil, false
	}
	m.syncSelection()
	return nil, true
}

// handleFilterKeys cycles the filter criteria. Category applies on every
// page but the archive; priority and status only on All Tasks.
func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	page := m.UiState.Page()
	if page == state.PageArchive {
		return nil, false
	}

	criteria := m.UiState.Criteria()
	switch {
	case key.Matches(msg, m.keys.CycleCategory):
		criteria.CategoryID = nextCategory(criteria.CategoryID, m.AppState.Categories())
	case key.Matches(msg, m.keys.Clear):
		criteria = filter.Criteria{}
	case key.Matches(msg, m.keys.CyclePriority) && page == state.PageAll:
		criteria.Priority = nextPriority(criteria.Priority)
	case key.Matches(msg, m.keys.CycleStatus) && page == state.PageAll:
		criteria.Status = criteria.Status.Next()
	default:
		return nil, false
	}

	m.UiState.SetCriteria(criteria)
	m.syncSelection()
	return nil, true
}

// moveSelectedTask swaps the selected task with its neighbour and persists
// the new order
func (m *Model) moveSelectedTask(delta int) tea.Cmd {
	if m.UiState.Page() != state.PageAll {
		return m.notify(state.LevelInfo, "Reorder tasks from the All Tasks page")
	}

	idx := m.UiState.Selected()
	ids, ok := reorderedIDs(m.AppState.Tasks(), m.visibleTasks(), idx, delta)
	if !ok {
		return nil
	}

	m.UiState.SetSelected(idx + delta)
	m.syncSelection()
	return m.reorderCmd(ids)
}
