package state

import (
	"testing"

	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/models"
)

func TestUIState_PageCycling(t *testing.T) {
	s := NewUIState()

	s.PrevPage()
	if s.Page() != PageArchive {
		t.Errorf("PrevPage from All = %v, want PageArchive", s.Page())
	}

	s.NextPage()
	if s.Page() != PageAll {
		t.Errorf("NextPage from Archive = %v, want PageAll", s.Page())
	}

	s.SetPage(Page(9))
	if s.Page() != PageAll {
		t.Errorf("SetPage(out of range) changed page to %v", s.Page())
	}
}

func TestUIState_SetPageResetsSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelected(4)

	s.SetPage(PageAll)
	if s.Selected() != 4 {
		t.Errorf("Selecting the same page reset selection to %d", s.Selected())
	}

	s.SetPage(PageToday)
	if s.Selected() != 0 {
		t.Errorf("Selection after page change = %d, want 0", s.Selected())
	}
}

func TestUIState_MoveSelectionClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		count int
		want  int
	}{
		{"down", 0, 1, 3, 1},
		{"past end", 2, 1, 3, 2},
		{"before start", 0, -1, 3, 0},
		{"empty list", 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetSelected(tt.start)
			s.MoveSelection(tt.delta, tt.count)
			if s.Selected() != tt.want {
				t.Errorf("Selected = %d, want %d", s.Selected(), tt.want)
			}
		})
	}
}

func TestUIState_EnsureVisible(t *testing.T) {
	s := NewUIState()

	s.SetSelected(7)
	s.EnsureVisible(5)
	if s.ScrollOffset() != 3 {
		t.Errorf("ScrollOffset = %d, want 3", s.ScrollOffset())
	}

	s.SetSelected(1)
	s.EnsureVisible(5)
	if s.ScrollOffset() != 1 {
		t.Errorf("ScrollOffset = %d, want 1", s.ScrollOffset())
	}
}

func TestUIState_CriteriaResetsSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelected(3)

	high := models.PriorityHigh
	s.SetCriteria(filter.Criteria{Priority: &high})

	if s.Selected() != 0 {
		t.Errorf("Selected = %d, want 0", s.Selected())
	}
	if !s.Criteria().Active() {
		t.Error("Expected criteria to be active")
	}
}

func TestUIState_Detail(t *testing.T) {
	s := NewUIState()

	s.OpenDetail(5)
	if s.Mode() != DetailMode || s.DetailTaskID() != 5 {
		t.Errorf("OpenDetail: mode=%v id=%d", s.Mode(), s.DetailTaskID())
	}

	s.CloseDetail()
	if s.Mode() != NormalMode || s.DetailTaskID() != 0 {
		t.Errorf("CloseDetail: mode=%v id=%d", s.Mode(), s.DetailTaskID())
	}
}
