package task

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/handler"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display all details of a task, rendering its description and notes as markdown.",
		RunE:  handler.Command(handler.HandlerFunc(runShow)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	taskID, err := args.ParseID("task")
	if err != nil {
		return nil, err
	}

	task, err := c.App.TaskService.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &models.NotFoundError{Entity: "task", ID: taskID}
	}

	category, err := c.App.CategoryService.Get(ctx, task.CategoryID)
	if err != nil {
		return nil, err
	}
	now := c.Now()

	return &cli.Result{
		Data: task,
		Human: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, outputHuman(task, category, now))
			return err
		},
	}, nil
}

// outputHuman renders the task as a card
func outputHuman(task *models.Task, category *models.Category, now time.Time) string {
	var b strings.Builder

	title := styles.TitleStyle.Render(task.Title)
	if task.Completed {
		title += "  " + styles.DoneStyle.UnsetStrikethrough().Render("✓ done")
	}
	b.WriteString(title + "\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + value + "\n")
	}
	field("ID:", styles.ValueStyle.Render(fmt.Sprintf("%d", task.ID)))
	field("Category:", styles.RenderCategoryChip(category))
	field("Priority:", styles.RenderPriority(task.Priority))
	if task.DueDate != nil {
		due := formatDue(*task.DueDate, now)
		if !task.Completed && task.DueDate.Before(now) {
			due = styles.OverdueStyle.Render(due + " overdue")
		}
		field("Due:", due)
	}
	field("Created:", styles.ValueStyle.Render(formatDue(task.CreatedAt, now)))

	b.WriteString(styles.SectionStyle.Render("Description") + "\n")
	b.WriteString(renderMarkdown(task.Description, "No description"))

	b.WriteString(styles.SectionStyle.Render("Notes") + "\n")
	b.WriteString(renderMarkdown(task.Notes, "No notes"))

	return styles.RenderCard(strings.TrimRight(b.String(), "\n"))
}

// renderMarkdown renders markdown with glamour, falling back to plain text
func renderMarkdown(markdown, placeholder string) string {
	if strings.TrimSpace(markdown) == "" {
		return styles.SubtitleStyle.Render(placeholder) + "\n"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(styles.CardWidth-8),
	)
	if err != nil {
		return markdown + "\n"
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown + "\n"
	}
	return strings.Trim(out, "\n") + "\n"
}
