package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/taskflow/internal/models"
	categoryservice "github.com/thenoetrevino/taskflow/internal/services/category"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// loadData fetches tasks and categories concurrently
func (m *Model) loadData() tea.Cmd {
	ctx := m.Ctx
	tasksSvc, categorySvc := m.App.TaskService, m.App.CategoryService

	return func() tea.Msg {
		var (
			tasks      []*models.Task
			categories []*models.Category
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			tasks, err = tasksSvc.List(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			categories, err = categorySvc.List(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return loadFailedMsg{err: err}
		}
		return dataLoadedMsg{tasks: tasks, categories: categories}
	}
}

// listenForEvents waits for the next debounced store change
func (m *Model) listenForEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch, ctx := m.EventChan, m.Ctx

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return storeChangedMsg{event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// expireToast schedules removal of one toast
func expireToast(n state.Notification, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: n.ID}
	})
}

// mutate runs a store write off the UI goroutine and reports the result
func (m *Model) mutate(action, toast string, level state.NotificationLevel, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.Ctx
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			return mutationFailedMsg{action: action, err: err}
		}
		return mutationDoneMsg{toast: toast, level: level}
	}
}

func (m *Model) toggleTaskCmd(id int) tea.Cmd {
	ctx, svc := m.Ctx, m.App.TaskService
	return func() tea.Msg {
		task, err := svc.ToggleComplete(ctx, id)
		if err != nil {
			return mutationFailedMsg{action: "update task", err: err}
		}
		if task.Completed {
			return mutationDoneMsg{toast: "Task completed!", level: state.LevelSuccess}
		}
		return mutationDoneMsg{toast: "Task marked as incomplete", level: state.LevelInfo}
	}
}

func (m *Model) deleteTaskCmd(id int) tea.Cmd {
	svc := m.App.TaskService
	return m.mutate("delete task", "Task deleted", state.LevelSuccess, func(ctx context.Context) error {
		_, err := svc.Delete(ctx, id)
		return err
	})
}

func (m *Model) createTaskCmd(req taskservice.CreateTaskRequest) tea.Cmd {
	svc := m.App.TaskService
	return m.mutate("create task", "Task created successfully!", state.LevelSuccess, func(ctx context.Context) error {
		_, err := svc.Create(ctx, req)
		return err
	})
}

func (m *Model) updateTaskCmd(id int, patch models.TaskPatch) tea.Cmd {
	svc := m.App.TaskService
	return m.mutate("update task", "Task updated successfully", state.LevelSuccess, func(ctx context.Context) error {
		_, err := svc.Update(ctx, id, patch)
		return err
	})
}

func (m *Model) restoreTaskCmd(id int) tea.Cmd {
	svc := m.App.TaskService
	completed := false
	return m.mutate("restore task", "Task restored to active list", state.LevelSuccess, func(ctx context.Context) error {
		_, err := svc.Update(ctx, id, models.TaskPatch{Completed: &completed})
		return err
	})
}

func (m *Model) reorderCmd(ids []int) tea.Cmd {
	svc := m.App.TaskService
	return m.mutate("reorder tasks", "", state.LevelInfo, func(ctx context.Context) error {
		_, err := svc.Reorder(ctx, ids)
		return err
	})
}

// clearArchiveCmd deletes every completed task concurrently
func (m *Model) clearArchiveCmd(ids []int) tea.Cmd {
	svc := m.App.TaskService
	return m.mutate("clear archive", "Archive cleared successfully", state.LevelSuccess, func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		for _, id := range ids {
			g.Go(func() error {
				_, err := svc.Delete(gctx, id)
				return err
			})
		}
		return g.Wait()
	})
}

func (m *Model) createCategoryCmd(req categoryservice.CreateCategoryRequest) tea.Cmd {
	svc := m.App.CategoryService
	return m.mutate("create category", "Category created", state.LevelSuccess, func(ctx context.Context) error {
		_, err := svc.Create(ctx, req)
		return err
	})
}
