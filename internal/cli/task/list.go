package task

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/handler"
	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List all tasks in display order, optionally filtered by category, priority or status.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runList)),
	}

	// Flags
	cmd.Flags().Int("category", 0, "Only tasks in this category ID")
	cmd.Flags().String("priority", "", "Only tasks with this priority (low, medium, high)")
	cmd.Flags().String("status", "", "all, incomplete or completed")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	criteria, err := args.ParseCriteria()
	if err != nil {
		return nil, err
	}

	var tasks []*models.Task
	if criteria.CategoryID != nil {
		tasks, err = c.App.TaskService.FilterByCategory(ctx, *criteria.CategoryID)
	} else {
		tasks, err = c.App.TaskService.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	tasks = criteria.Apply(filter.ByOrder(tasks))

	categories, err := c.App.CategoryService.List(ctx)
	if err != nil {
		return nil, err
	}
	lookup := newCategoryLookup(categories)
	now := c.Now()

	return &cli.Result{
		Data: tasks,
		Human: func(w io.Writer) error {
			return writeTaskList(w, "Tasks", tasks, lookup, now)
		},
	}, nil
}
