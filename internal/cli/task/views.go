package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/handler"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/filter"
)

// TodayCmd returns the "tasks today" subcommand
func TodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Tasks due today",
		Long:  "List tasks due today, highest priority first, with today's progress.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runToday)),
	}
	cmd.Flags().Int("category", 0, "Only tasks in this category ID")
	handler.AddOutputFlags(cmd)
	return cmd
}

// UpcomingCmd returns the "tasks upcoming" subcommand
func UpcomingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Tasks due after today",
		Long:  "List tasks due after today, grouped by day.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runUpcoming)),
	}
	cmd.Flags().Int("category", 0, "Only tasks in this category ID")
	handler.AddOutputFlags(cmd)
	return cmd
}

// ArchiveCmd returns the "tasks archive" subcommand
func ArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Completed tasks",
		Long:  "List completed tasks, newest first, optionally searching titles.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runArchive)),
	}
	cmd.Flags().String("search", "", "Case-insensitive title search")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runToday(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	criteria, err := args.ParseCriteria()
	if err != nil {
		return nil, err
	}

	tasks, err := c.App.TaskService.FilterDueToday(ctx)
	if err != nil {
		return nil, err
	}
	tasks = filter.TodayView(criteria.Apply(tasks))

	categories, err := c.App.CategoryService.List(ctx)
	if err != nil {
		return nil, err
	}
	lookup := newCategoryLookup(categories)
	now := c.Now()
	stats := filter.Count(tasks)

	return &cli.Result{
		Data: tasks,
		Human: func(w io.Writer) error {
			if err := writeTaskList(w, "Today", tasks, lookup, now); err != nil {
				return err
			}
			if stats.Total == 0 {
				return nil
			}
			_, err := fmt.Fprintf(w, "\n%s %d of %d done (%d%%)\n",
				styles.LabelStyle.Render("Progress:"), stats.Completed, stats.Total, stats.Progress())
			return err
		},
	}, nil
}

func runUpcoming(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	criteria, err := args.ParseCriteria()
	if err != nil {
		return nil, err
	}

	tasks, err := c.App.TaskService.FilterUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	tasks = criteria.Apply(tasks)

	categories, err := c.App.CategoryService.List(ctx)
	if err != nil {
		return nil, err
	}
	lookup := newCategoryLookup(categories)
	now := c.Now()
	groups := filter.UpcomingGroups(tasks, now)

	return &cli.Result{
		Data: tasks,
		Human: func(w io.Writer) error {
			if len(groups) == 0 {
				_, err := fmt.Fprintln(w, "No upcoming tasks")
				return err
			}
			for i, g := range groups {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := writeTaskList(w, g.Label, g.Tasks, lookup, now); err != nil {
					return err
				}
			}
			return nil
		},
	}, nil
}

func runArchive(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	tasks, err := c.App.TaskService.FilterCompleted(ctx)
	if err != nil {
		return nil, err
	}
	query := args.GetString("search", "")
	tasks = filter.ArchiveView(tasks, query)

	categories, err := c.App.CategoryService.List(ctx)
	if err != nil {
		return nil, err
	}
	lookup := newCategoryLookup(categories)
	now := c.Now()
	thisWeek := filter.CompletedThisWeek(tasks, now)

	return &cli.Result{
		Data: tasks,
		Human: func(w io.Writer) error {
			if err := writeTaskList(w, "Archive", tasks, lookup, now); err != nil {
				return err
			}
			if len(tasks) == 0 {
				return nil
			}
			_, err := fmt.Fprintf(w, "\n%s\n", styles.SubtitleStyle.Render(fmt.Sprintf("%d completed this week", thisWeek)))
			return err
		},
	}, nil
}
