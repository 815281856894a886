package huhforms

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// TaskFormValues is bound to the quick-add and edit forms
type TaskFormValues struct {
	Title       string
	Description string
	Notes       string
	CategoryID  int
	Priority    models.Priority
	Due         string
}

// NewTaskFormValues returns the quick-add defaults
func NewTaskFormValues(categoryID int) *TaskFormValues {
	return &TaskFormValues{
		CategoryID: categoryID,
		Priority:   models.DefaultPriority,
	}
}

// TaskFormValuesFrom pre-fills the edit form from a task
func TaskFormValuesFrom(task *models.Task) *TaskFormValues {
	return &TaskFormValues{
		Title:       task.Title,
		Description: task.Description,
		Notes:       task.Notes,
		CategoryID:  task.CategoryID,
		Priority:    task.Priority,
		Due:         FormatDue(task.DueDate),
	}
}

// CategoryOptions builds select options from the loaded categories
func CategoryOptions(categories []*models.Category) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(c.Name, c.ID))
	}
	return options
}

// PriorityOptions returns the priority select options, highest first
func PriorityOptions() []huh.Option[models.Priority] {
	return []huh.Option[models.Priority]{
		huh.NewOption(models.PriorityHigh.Label(), models.PriorityHigh),
		huh.NewOption(models.PriorityMedium.Label(), models.PriorityMedium),
		huh.NewOption(models.PriorityLow.Label(), models.PriorityLow),
	}
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

// CreateQuickAddForm creates the compact form used to add a task
func CreateQuickAddForm(values *TaskFormValues, categories []*models.Category) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Task").
			Placeholder("What needs to be done?").
			Validate(validateTitle).
			Value(&values.Title),
	}

	if len(categories) > 0 {
		fields = append(fields,
			huh.NewSelect[int]().
				Key("category").
				Title("Category").
				Options(CategoryOptions(categories)...).
				Value(&values.CategoryID),
		)
	}

	fields = append(fields,
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(PriorityOptions()...).
			Value(&values.Priority),

		huh.NewInput().
			Key("due").
			Title("Due (optional)").
			Placeholder("YYYY-MM-DD HH:MM").
			Validate(validateDue).
			Value(&values.Due),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithShowHelp(false)
}

// CreateTaskEditForm creates the full edit form, including markdown fields
func CreateTaskEditForm(values *TaskFormValues, categories []*models.Category, descriptionLines int) *huh.Form {
	details := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Validate(validateTitle).
			Value(&values.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(&values.Description),

		huh.NewText().
			Key("notes").
			Title("Notes").
			CharLimit(5000).
			Lines(3).
			Value(&values.Notes),
	}

	meta := []huh.Field{
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(PriorityOptions()...).
			Value(&values.Priority),

		huh.NewInput().
			Key("due").
			Title("Due").
			Placeholder("YYYY-MM-DD HH:MM").
			Validate(validateDue).
			Value(&values.Due),
	}
	if len(categories) > 0 {
		meta = append([]huh.Field{
			huh.NewSelect[int]().
				Key("category").
				Title("Category").
				Options(CategoryOptions(categories)...).
				Value(&values.CategoryID),
		}, meta...)
	}

	form := huh.NewForm(huh.NewGroup(details...), huh.NewGroup(meta...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
