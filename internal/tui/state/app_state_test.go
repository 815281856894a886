package state

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/taskflow/internal/models"
)

func TestAppState_Lifecycle(t *testing.T) {
	s := NewAppState()
	if !s.Loading() {
		t.Fatal("Expected new AppState to be loading")
	}

	s.SetErr(errors.New("boom"))
	if s.Loading() || s.Err() == nil {
		t.Errorf("After SetErr: loading=%v err=%v", s.Loading(), s.Err())
	}

	s.SetLoading()
	if !s.Loading() || s.Err() != nil {
		t.Errorf("After SetLoading: loading=%v err=%v", s.Loading(), s.Err())
	}

	s.SetData([]*models.Task{{ID: 1, CategoryID: 2}}, []*models.Category{{ID: 2, Name: "Work"}})
	if s.Loading() || s.Err() != nil {
		t.Errorf("After SetData: loading=%v err=%v", s.Loading(), s.Err())
	}

	if c := s.CategoryByID(2); c == nil || c.Name != "Work" {
		t.Errorf("CategoryByID(2) = %+v", c)
	}
	if s.CategoryByID(9) != nil {
		t.Error("Expected nil for unknown category")
	}
	if s.TaskByID(1) == nil || s.TaskByID(2) != nil {
		t.Error("TaskByID lookup mismatch")
	}
}

func TestAppState_SetDataNil(t *testing.T) {
	s := NewAppState()
	s.SetData(nil, nil)

	if s.Tasks() == nil || s.Categories() == nil {
		t.Error("Expected non-nil empty slices")
	}
}
