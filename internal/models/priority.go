package models

import (
	"fmt"
	"strings"
)

// Priority is the urgency of a task
type Priority string

// Priority levels
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when a task is created without one
const DefaultPriority = PriorityMedium

// Priorities lists every level from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Weight orders priorities; unknown values sort below low
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is a known level
func (p Priority) Valid() bool {
	return p.Weight() > 0
}

// Label returns the capitalised display name
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParsePriority converts user input into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q: must be low, medium or high", s)
	}
	return p, nil
}
