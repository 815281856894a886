package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/taskflow/internal/models"
	categoryservice "github.com/thenoetrevino/taskflow/internal/services/category"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
	"github.com/thenoetrevino/taskflow/internal/tui/huhforms"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// openForm installs a themed form and switches into mode
func (m *Model) openForm(form *huh.Form, kind formKind, mode state.Mode) tea.Cmd {
	form = form.
		WithTheme(huhforms.CreateTaskFlowTheme(m.Config.ColorScheme)).
		WithKeyMap(huhforms.CreateKeyMapWithShiftEnter()).
		WithWidth(m.formWidth())

	m.forms.form = form
	m.forms.kind = kind
	m.UiState.SetMode(mode)
	return form.Init()
}

func (m *Model) closeForm() {
	*m.forms = formState{}
	m.UiState.SetMode(state.NormalMode)
}

func (m *Model) openQuickAddForm() tea.Cmd {
	m.forms.task = huhforms.NewTaskFormValues(m.defaultCategoryID())
	form := huhforms.CreateQuickAddForm(m.forms.task, m.AppState.Categories())
	return m.openForm(form, quickAddForm, state.FormMode)
}

func (m *Model) openEditForm(task *models.Task) tea.Cmd {
	m.forms.task = huhforms.TaskFormValuesFrom(task)
	m.forms.targetID = task.ID
	form := huhforms.CreateTaskEditForm(m.forms.task, m.AppState.Categories(), m.descriptionLines())
	return m.openForm(form, editTaskForm, state.FormMode)
}

func (m *Model) openCategoryForm() tea.Cmd {
	m.forms.category = huhforms.NewCategoryFormValues()
	return m.openForm(huhforms.CreateCategoryForm(m.forms.category), newCategoryForm, state.FormMode)
}

func (m *Model) openDeleteConfirm(task *models.Task) tea.Cmd {
	m.forms.targetID = task.ID
	title := fmt.Sprintf("Delete %q?", truncate.StringWithTail(task.Title, 40, "…"))
	form := huhforms.CreateConfirmForm(title, "This cannot be undone.", &m.forms.confirm)
	return m.openForm(form, deleteTaskConfirm, state.ConfirmMode)
}

func (m *Model) openClearArchiveConfirm() tea.Cmd {
	n := len(archiveTasks(m.AppState.Tasks(), ""))
	if n == 0 {
		return m.notify(state.LevelInfo, "Archive is already empty")
	}
	title := fmt.Sprintf("Delete all %d completed tasks?", n)
	form := huhforms.CreateConfirmForm(title, "This cannot be undone.", &m.forms.confirm)
	return m.openForm(form, clearArchiveConfirm, state.ConfirmMode)
}

// updateForm forwards a message to the open form and submits it when done
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.closeForm()
		return nil
	}

	model, cmd := m.forms.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.forms.form = f
	}

	switch m.forms.form.State {
	case huh.StateAborted:
		m.closeForm()
		return nil
	case huh.StateCompleted:
		submit := m.submitForm()
		m.closeForm()
		return submit
	}
	return cmd
}

// submitForm turns the completed form into a store command
func (m *Model) submitForm() tea.Cmd {
	f := m.forms
	switch f.kind {
	case quickAddForm:
		title := strings.TrimSpace(f.task.Title)
		if title == "" {
			return nil
		}
		due, err := huhforms.ParseDue(f.task.Due, m.App.Now().Location())
		if err != nil {
			return m.notify(state.LevelError, "Invalid due date")
		}
		return m.createTaskCmd(taskservice.CreateTaskRequest{
			Title:      title,
			CategoryID: f.task.CategoryID,
			Priority:   f.task.Priority,
			DueDate:    due,
		})

	case editTaskForm:
		return m.submitEditForm()

	case newCategoryForm:
		name := strings.TrimSpace(f.category.Name)
		if name == "" {
			return nil
		}
		return m.createCategoryCmd(categoryservice.CreateCategoryRequest{
			Name:  name,
			Color: f.category.Color,
			Icon:  f.category.Icon,
		})

	case deleteTaskConfirm:
		if !f.confirm {
			return nil
		}
		return m.deleteTaskCmd(f.targetID)

	case clearArchiveConfirm:
		if !f.confirm {
			return nil
		}
		var ids []int
		for _, t := range archiveTasks(m.AppState.Tasks(), "") {
			ids = append(ids, t.ID)
		}
		return m.clearArchiveCmd(ids)
	}
	return nil
}

func (m *Model) submitEditForm() tea.Cmd {
	values := m.forms.task
	title := strings.TrimSpace(values.Title)
	if title == "" {
		return nil
	}

	due, err := huhforms.ParseDue(values.Due, m.App.Now().Location())
	if err != nil {
		return m.notify(state.LevelError, "Invalid due date")
	}

	description := strings.TrimSpace(values.Description)
	notes := strings.TrimSpace(values.Notes)
	patch := models.TaskPatch{
		Title:       &title,
		Description: &description,
		Notes:       &notes,
		Priority:    &values.Priority,
		DueDate:     due,
	}
	if values.CategoryID != 0 {
		patch.CategoryID = &values.CategoryID
	}
	if due == nil {
		patch.ClearDueDate = true
	}
	return m.updateTaskCmd(m.forms.targetID, patch)
}
