package state

import (
	"github.com/thenoetrevino/taskflow/internal/filter"
)

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Default navigation mode
	SearchMode              // Typing into the archive search box
	FormMode                // A huh form (add, edit, new category) has focus
	ConfirmMode             // Confirming a destructive action
	DetailMode              // Task detail modal
	HelpMode                // Displaying help screen
)

// Page identifies one of the top-level views.
type Page int

const (
	PageAll Page = iota
	PageToday
	PageUpcoming
	PageArchive
)

// PageCount is the number of pages reachable by tab.
const PageCount = 4

// UIState manages the user interface state.
// This includes the current page, selection, filters, terminal dimensions,
// and the current interaction mode.
type UIState struct {
	page Page

	// selected is the index of the highlighted task in the current page's list
	selected int

	// scrollOffset is the index of the first visible row
	scrollOffset int

	width  int
	height int

	mode Mode

	// criteria is the filter bar state on the All Tasks page
	criteria filter.Criteria

	// archiveQuery is the committed archive search text
	archiveQuery string

	// detailTaskID is the task shown in DetailMode
	detailTaskID int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		page: PageAll,
		mode: NormalMode,
	}
}

// Page returns the current page.
func (s *UIState) Page() Page {
	return s.page
}

// SetPage switches page and resets the selection.
func (s *UIState) SetPage(p Page) {
	if p < 0 || p >= PageCount {
		return
	}
	if p != s.page {
		s.selected = 0
		s.scrollOffset = 0
	}
	s.page = p
}

// NextPage cycles forward through pages.
func (s *UIState) NextPage() {
	s.SetPage((s.page + 1) % PageCount)
}

// PrevPage cycles backward through pages.
func (s *UIState) PrevPage() {
	s.SetPage((s.page + PageCount - 1) % PageCount)
}

// Selected returns the highlighted row index.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected sets the highlighted row index.
func (s *UIState) SetSelected(index int) {
	s.selected = index
}

// MoveSelection moves the highlight by delta, clamped to [0, count).
func (s *UIState) MoveSelection(delta, count int) {
	s.selected += delta
	s.ClampSelection(count)
}

// ClampSelection keeps the selection inside a list of count rows.
func (s *UIState) ClampSelection(count int) {
	if s.selected >= count {
		s.selected = count - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// ScrollOffset returns the index of the first visible row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// EnsureVisible adjusts the scroll offset so the selection is within a
// window of visibleRows rows.
func (s *UIState) EnsureVisible(visibleRows int) {
	if visibleRows <= 0 {
		return
	}
	if s.selected < s.scrollOffset {
		s.scrollOffset = s.selected
	}
	if s.selected >= s.scrollOffset+visibleRows {
		s.scrollOffset = s.selected - visibleRows + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Criteria returns the active filters.
func (s *UIState) Criteria() filter.Criteria {
	return s.criteria
}

// SetCriteria replaces the active filters and resets the selection.
func (s *UIState) SetCriteria(c filter.Criteria) {
	s.criteria = c
	s.selected = 0
	s.scrollOffset = 0
}

// ArchiveQuery returns the archive search text.
func (s *UIState) ArchiveQuery() string {
	return s.archiveQuery
}

// SetArchiveQuery sets the archive search text and resets the selection.
func (s *UIState) SetArchiveQuery(q string) {
	s.archiveQuery = q
	s.selected = 0
	s.scrollOffset = 0
}

// DetailTaskID returns the task shown in the detail modal.
func (s *UIState) DetailTaskID() int {
	return s.detailTaskID
}

// OpenDetail shows the detail modal for a task.
func (s *UIState) OpenDetail(taskID int) {
	s.detailTaskID = taskID
	s.mode = DetailMode
}

// CloseDetail returns to normal mode.
func (s *UIState) CloseDetail() {
	s.detailTaskID = 0
	s.mode = NormalMode
}
