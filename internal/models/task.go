package models

import "time"

// Task represents a single to-do item
type Task struct {
	ID          int        `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CategoryID  int        `json:"categoryId" yaml:"category_id"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	DueDate     *time.Time `json:"dueDate" yaml:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at"`
	Order       int        `json:"order" yaml:"order"`
}

// GetID returns the task ID (used by quiet CLI output)
func (t *Task) GetID() int {
	return t.ID
}

// Clone returns a deep copy so callers can never alias store-owned state
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

// HasDueDate reports whether the task carries a due date
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil
}

// CloneTasks copies every task in the slice
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
