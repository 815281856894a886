package components

import (
	"strings"

	"github.com/thenoetrevino/taskflow/internal/filter"
)

type FilterBarProps struct {
	Criteria     filter.Criteria
	CategoryName string // name for Criteria.CategoryID, if set
	Keys         FilterKeys
}

// FilterKeys are the bindings shown next to each filter
type FilterKeys struct {
	Priority string
	Status   string
	Category string
	Clear    string
}

// RenderFilterBar renders "priority: high  status: all  category: Work"
func RenderFilterBar(props FilterBarProps) string {
	c := props.Criteria

	priority := "any"
	if c.Priority != nil {
		priority = string(*c.Priority)
	}
	category := "all"
	if c.CategoryID != nil {
		category = props.CategoryName
	}

	parts := []string{
		filterPart(props.Keys.Priority, "priority", priority, c.Priority != nil),
		filterPart(props.Keys.Status, "status", c.Status.String(), c.Status != filter.StatusAny),
		filterPart(props.Keys.Category, "category", category, c.CategoryID != nil),
	}
	if c.Active() && props.Keys.Clear != "" {
		parts = append(parts, SubtleStyle.Render("["+props.Keys.Clear+"] clear"))
	}
	return strings.Join(parts, "   ")
}

func filterPart(key, name, value string, active bool) string {
	label := SubtleStyle.Render("[" + key + "] " + name + ": ")
	if active {
		return label + FilterChipStyle.Render(value)
	}
	return label + value
}
