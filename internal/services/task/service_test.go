package task

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var testLoc = time.FixedZone("TEST", -5*60*60)

// fixedNow is the clock every test runs against: 2024-06-12 10:00 local
var fixedNow = time.Date(2024, 6, 12, 10, 0, 0, 0, testLoc)

func fixedClock() time.Time { return fixedNow }

func at(day, hour, minute int) *time.Time {
	t := time.Date(2024, 6, day, hour, minute, 0, 0, testLoc)
	return &t
}

// newTestService creates a store with no latency and a fixed clock
func newTestService(t *testing.T, seed []*models.Task, opts ...Option) Service {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock), WithLatency(latency.None())}, opts...)
	return NewService(seed, opts...)
}

// seedTasks returns tasks with ids 1..n and no due dates
func seedTasks(n int) []*models.Task {
	tasks := make([]*models.Task, 0, n)
	for i := 1; i <= n; i++ {
		tasks = append(tasks, &models.Task{
			ID:         i,
			Title:      "Task",
			CategoryID: 1,
			Priority:   models.PriorityMedium,
			Order:      i - 1,
		})
	}
	return tasks
}

func ids(tasks []*models.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreate_EmptyStoreDefaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	result, err := svc.Create(context.Background(), CreateTaskRequest{Title: "A"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.ID != 1 {
		t.Errorf("Expected ID 1, got %d", result.ID)
	}
	if result.Completed {
		t.Error("Expected new task to be incomplete")
	}
	if result.Priority != models.PriorityMedium {
		t.Errorf("Expected priority 'medium', got '%s'", result.Priority)
	}
	if result.CategoryID != DefaultCategoryID {
		t.Errorf("Expected category %d, got %d", DefaultCategoryID, result.CategoryID)
	}
	if result.DueDate != nil {
		t.Errorf("Expected no due date, got %v", result.DueDate)
	}
	if !result.CreatedAt.Equal(fixedNow) {
		t.Errorf("Expected CreatedAt %v, got %v", fixedNow, result.CreatedAt)
	}
	if result.Order != 0 {
		t.Errorf("Expected order 0, got %d", result.Order)
	}
}

func TestCreate_IDsStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	ctx := context.Background()

	last := 0
	for i := 0; i < 10; i++ {
		task, err := svc.Create(ctx, CreateTaskRequest{Title: "T"})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if task.ID != last+1 {
			t.Errorf("Expected ID %d, got %d", last+1, task.ID)
		}
		last = task.ID
	}
}

func TestCreate_UsesMaxIDNotCount(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, []*models.Task{{ID: 2}, {ID: 9}})

	task, err := svc.Create(context.Background(), CreateTaskRequest{Title: "next"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.ID != 10 {
		t.Errorf("Expected ID 10, got %d", task.ID)
	}
	if task.Order != 2 {
		t.Errorf("Expected order 2 (collection size), got %d", task.Order)
	}
}

func TestCreate_KeepsProvidedFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	due := at(13, 9, 0)

	task, err := svc.Create(context.Background(), CreateTaskRequest{
		Title:       "Write report",
		Description: "## Outline",
		CategoryID:  3,
		Priority:    models.PriorityHigh,
		DueDate:     due,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.CategoryID != 3 || task.Priority != models.PriorityHigh || task.Description != "## Outline" {
		t.Errorf("Expected provided fields kept, got %+v", task)
	}
	if task.DueDate == nil || !task.DueDate.Equal(*due) {
		t.Errorf("Expected due date %v, got %v", due, task.DueDate)
	}

	// Mutating the request's time must not reach the store
	*due = due.Add(24 * time.Hour)
	stored, _ := svc.Get(context.Background(), task.ID)
	if stored.DueDate.Equal(*due) {
		t.Error("Expected store to hold its own copy of the due date")
	}
}

// ============================================================================
// READ
// ============================================================================

func TestList_ReturnsCopies(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(2))
	ctx := context.Background()

	tasks, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	tasks[0].Title = "tampered"
	tasks[0].ID = 42

	again, _ := svc.List(ctx)
	if again[0].Title != "Task" || again[0].ID != 1 {
		t.Errorf("Expected store unaffected by caller mutation, got %+v", again[0])
	}
}

func TestList_SeedIsCopied(t *testing.T) {
	t.Parallel()

	seed := seedTasks(1)
	svc := newTestService(t, seed)
	seed[0].Title = "changed after seeding"

	task, _ := svc.Get(context.Background(), 1)
	if task.Title != "Task" {
		t.Errorf("Expected seed to be copied, got '%s'", task.Title)
	}
}

func TestGet_NotFoundIsNil(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(1))

	task, err := svc.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Expected no error for missing task, got %v", err)
	}
	if task != nil {
		t.Errorf("Expected nil task, got %+v", task)
	}
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdate_MergesPatch(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(3))
	title := "x"
	high := models.PriorityHigh

	task, err := svc.Update(context.Background(), 3, models.TaskPatch{Title: &title, Priority: &high})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID != 3 || task.Title != "x" || task.Priority != models.PriorityHigh {
		t.Errorf("Expected id 3 title 'x' priority high, got %+v", task)
	}
	if task.CategoryID != 1 {
		t.Errorf("Expected untouched category 1, got %d", task.CategoryID)
	}
}

func TestUpdate_IgnoresIDInPatch(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(3))

	var patch models.TaskPatch
	if err := json.Unmarshal([]byte(`{"id": 999, "title": "x"}`), &patch); err != nil {
		t.Fatalf("Failed to decode patch: %v", err)
	}

	task, err := svc.Update(context.Background(), 3, patch)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.ID != 3 || task.Title != "x" {
		t.Errorf("Expected {id:3 title:x}, got {id:%d title:%s}", task.ID, task.Title)
	}

	missing, _ := svc.Get(context.Background(), 999)
	if missing != nil {
		t.Error("Expected no task with id 999")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(1))
	title := "x"

	_, err := svc.Update(context.Background(), 5, models.TaskPatch{Title: &title})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	task, _ := svc.Get(context.Background(), 1)
	if task.Title != "Task" {
		t.Error("Expected failed update to leave store unchanged")
	}
}

func TestUpdate_ClearDueDate(t *testing.T) {
	t.Parallel()

	seed := seedTasks(1)
	seed[0].DueDate = at(12, 9, 0)
	svc := newTestService(t, seed)

	task, err := svc.Update(context.Background(), 1, models.TaskPatch{ClearDueDate: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.DueDate != nil {
		t.Errorf("Expected due date cleared, got %v", task.DueDate)
	}
}

// ============================================================================
// DELETE
// ============================================================================

func TestDelete_ThenGetIsNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(2))
	ctx := context.Background()

	removed, err := svc.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if removed.ID != 2 {
		t.Errorf("Expected removed task 2, got %d", removed.ID)
	}

	remaining, _ := svc.List(ctx)
	if !equalIDs(ids(remaining), []int{1}) {
		t.Errorf("Expected only task 1 to remain, got %v", ids(remaining))
	}

	got, _ := svc.Get(ctx, 2)
	if got != nil {
		t.Error("Expected deleted task to be gone")
	}

	_, err = svc.Delete(ctx, 2)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected second delete to fail with ErrNotFound, got %v", err)
	}
}

func TestDelete_ReturnsCopy(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(2))
	stored := svc.(*service).tasks[0]

	removed, err := svc.Delete(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if removed == stored {
		t.Error("Expected Delete to return a copy, got the stored record")
	}
	if removed.ID != stored.ID || removed.Title != stored.Title {
		t.Errorf("Expected copy of task %d, got %+v", stored.ID, removed)
	}
}

func TestDelete_NextIDAfterDelete(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(3))
	ctx := context.Background()

	if _, err := svc.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	task, _ := svc.Create(ctx, CreateTaskRequest{Title: "new"})
	if task.ID != 3 {
		t.Errorf("Expected max+1 = 3 after deleting the max, got %d", task.ID)
	}
}

// ============================================================================
// TOGGLE
// ============================================================================

func TestToggleComplete_Involution(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(1))
	ctx := context.Background()

	first, err := svc.ToggleComplete(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !first.Completed {
		t.Error("Expected task to be completed after first toggle")
	}

	second, err := svc.ToggleComplete(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.Completed {
		t.Error("Expected task to be incomplete after second toggle")
	}
}

func TestToggleComplete_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	_, err := svc.ToggleComplete(context.Background(), 1)
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected *models.NotFoundError, got %v", err)
	}
	if nf.Entity != "task" || nf.ID != 1 {
		t.Errorf("Expected task 1, got %s %d", nf.Entity, nf.ID)
	}
}

// ============================================================================
// REORDER
// ============================================================================

func TestReorder_SetsPositions(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(3))

	result, err := svc.Reorder(context.Background(), []int{3, 1, 2})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := map[int]int{3: 0, 1: 1, 2: 2}
	for _, task := range result {
		if task.Order != want[task.ID] {
			t.Errorf("Expected task %d order %d, got %d", task.ID, want[task.ID], task.Order)
		}
	}

	if !equalIDs(ids(result), []int{1, 2, 3}) {
		t.Errorf("Expected insertion order preserved, got %v", ids(result))
	}
}

func TestReorder_SkipsUnknownIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(2))

	result, err := svc.Reorder(context.Background(), []int{42, 2, 1})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(result))
	}
	for _, task := range result {
		switch task.ID {
		case 2:
			if task.Order != 1 {
				t.Errorf("Expected task 2 order 1, got %d", task.Order)
			}
		case 1:
			if task.Order != 2 {
				t.Errorf("Expected task 1 order 2, got %d", task.Order)
			}
		}
	}
}

// ============================================================================
// FILTERS
// ============================================================================

func TestFilterByCategory_IdempotentSubset(t *testing.T) {
	t.Parallel()

	seed := seedTasks(5)
	seed[1].CategoryID = 2
	seed[3].CategoryID = 2
	svc := newTestService(t, seed)
	ctx := context.Background()

	first, err := svc.FilterByCategory(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, _ := svc.FilterByCategory(ctx, 2)

	if !equalIDs(ids(first), []int{2, 4}) {
		t.Errorf("Expected tasks [2 4], got %v", ids(first))
	}
	if !equalIDs(ids(first), ids(second)) {
		t.Error("Expected repeated filter to return the same result")
	}

	all, _ := svc.List(ctx)
	present := map[int]bool{}
	for _, task := range all {
		present[task.ID] = true
	}
	for _, id := range ids(first) {
		if !present[id] {
			t.Errorf("Filtered task %d not in List()", id)
		}
	}
}

func TestFilterByCategory_NoMatchIsEmpty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, seedTasks(2))

	tasks, err := svc.FilterByCategory(context.Background(), 7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", tasks)
	}
}

func TestFilterDueToday(t *testing.T) {
	t.Parallel()

	seed := seedTasks(4)
	seed[0].DueDate = at(12, 23, 59) // today, late
	seed[1].DueDate = at(13, 0, 1)   // tomorrow, just after midnight
	seed[2].DueDate = at(12, 0, 0)   // today, midnight
	// seed[3] has no due date
	svc := newTestService(t, seed)

	tasks, err := svc.FilterDueToday(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !equalIDs(ids(tasks), []int{1, 3}) {
		t.Errorf("Expected tasks [1 3], got %v", ids(tasks))
	}
}

func TestFilterUpcoming_SortedAscending(t *testing.T) {
	t.Parallel()

	seed := seedTasks(5)
	seed[0].DueDate = at(20, 9, 0)
	seed[1].DueDate = at(12, 23, 59) // today, excluded
	seed[2].DueDate = at(13, 0, 0)   // midnight tomorrow, included
	seed[3].DueDate = at(15, 12, 0)
	seed[4].DueDate = at(1, 12, 0) // past, excluded
	svc := newTestService(t, seed)

	tasks, err := svc.FilterUpcoming(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !equalIDs(ids(tasks), []int{3, 4, 1}) {
		t.Errorf("Expected tasks [3 4 1], got %v", ids(tasks))
	}
}

func TestFilterCompleted(t *testing.T) {
	t.Parallel()

	seed := seedTasks(3)
	seed[0].Completed = true
	seed[2].Completed = true
	svc := newTestService(t, seed)

	tasks, err := svc.FilterCompleted(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !equalIDs(ids(tasks), []int{1, 3}) {
		t.Errorf("Expected tasks [1 3], got %v", ids(tasks))
	}
}

// ============================================================================
// LATENCY & CANCELLATION
// ============================================================================

func TestCancelledCallLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	sim := latency.None().WithDelay(latency.TaskDelete, time.Hour)
	svc := newTestService(t, seedTasks(1), WithLatency(sim))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Delete(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}

	task, _ := svc.Get(context.Background(), 1)
	if task == nil {
		t.Error("Expected task to survive a cancelled delete")
	}
}

// ============================================================================
// EVENTS
// ============================================================================

func TestMutationsPublishEvents(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	defer func() { _ = bus.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := bus.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	svc := newTestService(t, nil, WithPublisher(bus))

	created, _ := svc.Create(ctx, CreateTaskRequest{Title: "A"})
	_, _ = svc.ToggleComplete(ctx, created.ID)
	_, _ = svc.Reorder(ctx, []int{created.ID})
	_, _ = svc.Delete(ctx, created.ID)
	_, _ = svc.Delete(ctx, created.ID) // fails, must not publish

	want := []events.EventType{events.TaskCreated, events.TaskUpdated, events.TasksReordered, events.TaskDeleted}
	for _, typ := range want {
		select {
		case evt := <-ch:
			if evt.Type != typ {
				t.Errorf("Expected %s, got %s", typ, evt.Type)
			}
		case <-time.After(time.Second):
			t.Fatalf("Timed out waiting for %s", typ)
		}
	}

	select {
	case evt := <-ch:
		t.Errorf("Expected no event for failed delete, got %+v", evt)
	default:
	}
}
