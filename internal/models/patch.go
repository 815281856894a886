package models

import "time"

// TaskPatch is a partial update for a task.
// Nil fields are left unchanged. Patches never carry an ID.
type TaskPatch struct {
	Title        *string    `json:"title,omitempty" yaml:"title,omitempty"`
	Description  *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Notes        *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Completed    *bool      `json:"completed,omitempty" yaml:"completed,omitempty"`
	CategoryID   *int       `json:"categoryId,omitempty" yaml:"category_id,omitempty"`
	Priority     *Priority  `json:"priority,omitempty" yaml:"priority,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty" yaml:"due_date,omitempty"`
	ClearDueDate bool       `json:"clearDueDate,omitempty" yaml:"clear_due_date,omitempty"`
	Order        *int       `json:"order,omitempty" yaml:"order,omitempty"`
}

// Apply merges the patch into t in place
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Order != nil {
		t.Order = *p.Order
	}
}

// CategoryPatch is a partial update for a category
type CategoryPatch struct {
	Name  *string `json:"name,omitempty" yaml:"name,omitempty"`
	Color *string `json:"color,omitempty" yaml:"color,omitempty"`
	Icon  *string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Order *int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// Apply merges the patch into c in place
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
}
