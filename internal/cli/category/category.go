package category

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/handler"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// CategoryCmd returns the category command group
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Inspect categories",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}

// ListCmd returns the category list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  "List all categories with their number of open tasks.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

// categorySummary is a category plus its open-task count
type categorySummary struct {
	*models.Category
	OpenTasks int `json:"openTasks"`
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	categories, err := c.App.CategoryService.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := c.App.TaskService.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := filter.OpenCountsByCategory(tasks)
	summaries := make([]categorySummary, 0, len(categories))
	for _, cat := range categories {
		summaries = append(summaries, categorySummary{Category: cat, OpenTasks: counts[cat.ID]})
	}

	return &cli.Result{
		Data: summaries,
		Human: func(w io.Writer) error {
			if len(summaries) == 0 {
				_, err := fmt.Fprintln(w, "No categories found")
				return err
			}

			fmt.Fprintf(w, "Found %d categories:\n\n", len(summaries))
			for _, s := range summaries {
				_, err := fmt.Fprintf(w, "  %s %s  %s\n",
					styles.SubtitleStyle.Render(fmt.Sprintf("[%d]", s.ID)),
					styles.RenderCategoryChip(s.Category),
					styles.ValueStyle.Render(fmt.Sprintf("%d open", s.OpenTasks)),
				)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}, nil
}
