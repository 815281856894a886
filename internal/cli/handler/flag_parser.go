package handler

import (
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/filter"
)

// ParseCriteria builds filter criteria from --category, --priority and --status
func (a *Arguments) ParseCriteria() (filter.Criteria, error) {
	var criteria filter.Criteria

	if a.Has("category") {
		id := a.GetInt("category", 0)
		if id <= 0 {
			return criteria, cli.Usagef("category must be greater than 0")
		}
		criteria.CategoryID = &id
	}

	if a.Has("priority") {
		p, err := cli.ParsePriority(a.GetString("priority", ""))
		if err != nil {
			return criteria, err
		}
		criteria.Priority = &p
	}

	if a.Has("status") {
		s, err := cli.ParseStatus(a.GetString("status", ""))
		if err != nil {
			return criteria, err
		}
		criteria.Status = s
	}

	return criteria, nil
}

// ParseID reads the single positional id argument
func (a *Arguments) ParseID(kind string) (int, error) {
	if len(a.Args) != 1 {
		return 0, &cli.UsageError{
			Message:    kind + " ID is required",
			Suggestion: "pass exactly one " + kind + " ID",
		}
	}
	return cli.ParseID(kind, a.Args[0])
}

