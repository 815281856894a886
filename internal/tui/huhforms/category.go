package huhforms

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// CategoryColorOptions returns the available colors for categories
func CategoryColorOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Indigo", models.DefaultCategoryColor),
		huh.NewOption("Blue", "#3B82F6"),
		huh.NewOption("Green", "#10B981"),
		huh.NewOption("Yellow", "#F59E0B"),
		huh.NewOption("Red", "#EF4444"),
		huh.NewOption("Pink", "#EC4899"),
		huh.NewOption("Cyan", "#06B6D4"),
		huh.NewOption("Gray", "#6B7280"),
	}
}

// CategoryIconOptions returns the icon names offered for categories
func CategoryIconOptions() []huh.Option[string] {
	icons := []string{models.DefaultCategoryIcon, "User", "Briefcase", "ShoppingCart", "Heart", "Home", "Book", "Star"}
	options := make([]huh.Option[string], 0, len(icons))
	for _, icon := range icons {
		options = append(options, huh.NewOption(icon, icon))
	}
	return options
}

// CategoryFormValues is bound to the new-category form
type CategoryFormValues struct {
	Name  string
	Color string
	Icon  string
}

// NewCategoryFormValues returns the form defaults
func NewCategoryFormValues() *CategoryFormValues {
	return &CategoryFormValues{
		Color: models.DefaultCategoryColor,
		Icon:  models.DefaultCategoryIcon,
	}
}

// CreateCategoryForm creates a huh form for adding a category
func CreateCategoryForm(values *CategoryFormValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Category Name").
			Placeholder("Enter category name...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}).
			Value(&values.Name),

		huh.NewSelect[string]().
			Key("color").
			Title("Color").
			Options(CategoryColorOptions()...).
			Value(&values.Color),

		huh.NewSelect[string]().
			Key("icon").
			Title("Icon").
			Options(CategoryIconOptions()...).
			Value(&values.Icon),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
