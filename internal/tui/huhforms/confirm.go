package huhforms

import "github.com/charmbracelet/huh"

// CreateConfirmForm creates a yes/no form for destructive actions
func CreateConfirmForm(title, description string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(confirm),
		),
	).WithShowHelp(false)
}
