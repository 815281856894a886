package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/notifications"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

const (
	sidebarWidth    = 26
	minSidebarWidth = 70 // terminal width below which the sidebar is hidden
	tabsHeight      = 3
	chromeHeight    = 4 // header, toolbar and spacing above the list
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m *Model) View() string {
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	switch m.UiState.Mode() {
	case state.FormMode, state.ConfirmMode:
		if m.forms.form != nil {
			return m.overlay(m.renderForm())
		}
	case state.DetailMode:
		if task := m.AppState.TaskByID(m.UiState.DetailTaskID()); task != nil {
			return m.overlay(components.RenderDetail(components.DetailProps{
				Task:     task,
				Category: m.AppState.CategoryByID(task.CategoryID),
				Width:    min(m.UiState.Width()-4, 80),
				Now:      m.App.Now(),
				EditKey:  m.Config.KeyMappings.EditTask,
			}))
		}
	case state.HelpMode:
		return m.overlay(m.renderHelp())
	}

	return m.renderBase()
}

// overlay centers content on an otherwise blank screen
func (m *Model) overlay(content string) string {
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

func (m *Model) renderBase() string {
	width := m.UiState.Width()

	toast := ""
	if n, ok := m.NotificationState.Latest(); ok {
		toast = notifications.RenderInlineFromState(n)
	}
	tabs := components.RenderTabs(tabLabels(), int(m.UiState.Page()), width, toast)

	mainWidth := width
	var body string
	if m.showSidebar() {
		mainWidth = width - sidebarWidth - 1
		sidebar := components.RenderSidebar(components.SidebarProps{
			Categories: m.AppState.Categories(),
			OpenCounts: filter.OpenCountsByCategory(m.AppState.Tasks()),
			ActiveID:   m.UiState.Criteria().CategoryID,
			Width:      sidebarWidth,
			Height:     m.bodyHeight(),
			NewKey:     m.Config.KeyMappings.CreateCategory,
		})
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", m.renderMain(mainWidth))
	} else {
		body = m.renderMain(mainWidth)
	}
	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, m.renderStatusBar())
}

func (m *Model) renderMain(width int) string {
	page := m.UiState.Page()
	r := routeFor(page)

	if m.AppState.Loading() {
		return components.RenderEmptyState("Loading tasks...", "", width)
	}
	if err := m.AppState.Err(); err != nil {
		banner := notifications.Render(notifications.Error, "Failed to load tasks: "+err.Error())
		hint := components.SubtleStyle.Render("press " + m.Config.KeyMappings.Retry + " to retry")
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Padding(2, 0).
			Render(banner + "\n\n" + hint)
	}

	tasks := m.visibleTasks()
	subtitle := r.Subtitle
	stats := filter.Count(tasks)
	if page == state.PageAll {
		stats = filter.Count(m.AppState.Tasks())
	}
	if page == state.PageArchive {
		subtitle = fmt.Sprintf("%d completed this week", filter.CompletedThisWeek(m.AppState.Tasks(), m.App.Now()))
	}

	header := components.RenderHeader(components.HeaderProps{
		Title:    r.Icon + " " + r.Label,
		Subtitle: subtitle,
		Stats:    stats,
		Width:    width,
	})

	lines := []string{header, "", m.renderToolbar(width, tasks), ""}
	if len(tasks) == 0 {
		message, hint := m.emptyState()
		lines = append(lines, components.RenderEmptyState(message, hint, width))
	} else {
		lines = append(lines, m.renderList(width, tasks))
	}
	return strings.Join(lines, "\n")
}

// renderToolbar renders the page-specific line under the header
func (m *Model) renderToolbar(width int, tasks []*models.Task) string {
	criteria := m.UiState.Criteria()
	keys := m.Config.KeyMappings

	switch m.UiState.Page() {
	case state.PageAll:
		return components.RenderFilterBar(components.FilterBarProps{
			Criteria:     criteria,
			CategoryName: m.categoryName(criteria.CategoryID),
			Keys: components.FilterKeys{
				Priority: keys.CyclePriority,
				Status:   keys.CycleStatus,
				Category: keys.CycleCategory,
				Clear:    keys.ClearFilters,
			},
		})
	case state.PageToday:
		return components.RenderProgress(filter.Count(tasks).Progress(), min(width, 60))
	case state.PageArchive:
		if m.UiState.Mode() == state.SearchMode {
			return m.search.View()
		}
		if q := m.UiState.ArchiveQuery(); q != "" {
			return components.SubtleStyle.Render(fmt.Sprintf("search: %q  (%s to change)", q, keys.Search))
		}
		return components.SubtleStyle.Render(fmt.Sprintf("%s search · %s restore · %s clear archive",
			keys.Search, keys.RestoreTask, keys.ClearArchive))
	}

	if criteria.CategoryID != nil {
		return components.SubtleStyle.Render("category: " + m.categoryName(criteria.CategoryID))
	}
	return ""
}

// emptyState picks the message for an empty page
func (m *Model) emptyState() (string, string) {
	keys := m.Config.KeyMappings
	switch m.UiState.Page() {
	case state.PageToday:
		return "Nothing due today", "press " + keys.AddTask + " to add a task"
	case state.PageUpcoming:
		return "No upcoming tasks", "tasks due after today show up here"
	case state.PageArchive:
		if q := m.UiState.ArchiveQuery(); q != "" {
			return fmt.Sprintf("No completed tasks match %q", q), "press esc in search to clear"
		}
		return "No completed tasks yet", ""
	}
	if m.UiState.Criteria().Active() {
		return "No tasks match your filters", "press " + keys.ClearFilters + " to clear filters"
	}
	return "No tasks yet", "press " + keys.AddTask + " to add one"
}

// renderList renders the visible window of task rows
func (m *Model) renderList(width int, tasks []*models.Task) string {
	if m.UiState.Page() == state.PageUpcoming {
		return m.renderGroups(width)
	}

	rows := m.listRows()
	start := min(m.UiState.ScrollOffset(), max(len(tasks)-1, 0))
	end := min(start+rows, len(tasks))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(tasks[i], i == m.UiState.Selected(), width))
	}
	return strings.Join(lines, "\n")
}

// renderGroups renders the Upcoming page with a heading per day
func (m *Model) renderGroups(width int) string {
	var lines []string
	selectedLine, idx := 0, 0
	for _, g := range m.upcomingGroups() {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		heading := fmt.Sprintf("%s (%d)", g.Label, len(g.Tasks))
		lines = append(lines, components.TitleStyle.Render(heading))
		for _, t := range g.Tasks {
			selected := idx == m.UiState.Selected()
			if selected {
				selectedLine = len(lines)
			}
			lines = append(lines, m.renderRow(t, selected, width))
			idx++
		}
	}

	rows := m.listRows()
	start := max(selectedLine-rows+1, 0)
	end := min(start+rows, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (m *Model) renderRow(task *models.Task, selected bool, width int) string {
	return components.RenderTaskRow(components.TaskRowProps{
		Task:     task,
		Category: m.AppState.CategoryByID(task.CategoryID),
		Selected: selected,
		Width:    width,
		Now:      m.App.Now(),
	})
}

func (m *Model) renderStatusBar() string {
	left := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.UiState.Mode() == state.SearchMode {
		left = "enter apply · esc clear"
	}

	right := ""
	if n := len(m.visibleTasks()); n > 0 {
		right = fmt.Sprintf("%d/%d", m.UiState.Selected()+1, n)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  left,
		Right: right,
	})
}

func (m *Model) renderForm() string {
	box := components.CreateInputBoxStyle
	switch m.forms.kind {
	case editTaskForm:
		box = components.EditInputBoxStyle
	case deleteTaskConfirm, clearArchiveConfirm:
		box = components.DeleteConfirmBoxStyle
	}
	return box.Width(m.formWidth() + 2).Render(m.forms.form.View())
}

func (m *Model) renderHelp() string {
	m.help.ShowAll = true
	defer func() { m.help.ShowAll = false }()

	content := components.TitleStyle.Render("Keyboard shortcuts") + "\n\n" +
		m.help.View(m.keys) + "\n\n" +
		components.SubtleStyle.Render("esc or "+m.Config.KeyMappings.ShowHelp+" to close")
	return components.HelpBoxStyle.Render(content)
}

func (m *Model) showSidebar() bool {
	return m.UiState.Width() >= minSidebarWidth
}

// bodyHeight is the space between the tabs and the status bar
func (m *Model) bodyHeight() int {
	return max(m.UiState.Height()-tabsHeight-1, 1)
}

// listRows is the number of task rows that fit under the header
func (m *Model) listRows() int {
	return max(m.bodyHeight()-chromeHeight, 1)
}

func (m *Model) formWidth() int {
	return min(max(m.UiState.Width()-10, 30), 70)
}

func (m *Model) descriptionLines() int {
	return min(max(m.UiState.Height()/4, 3), 10)
}
