package task

import (
	"context"
	"testing"

	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ============================================================================
// BENCHMARK SETUP HELPERS
// ============================================================================

func setupBenchmarkService(b *testing.B, n int) Service {
	b.Helper()
	seed := make([]*models.Task, 0, n)
	for i := 1; i <= n; i++ {
		seed = append(seed, &models.Task{ID: i, Title: "Task", CategoryID: i%5 + 1, Priority: models.PriorityMedium})
	}
	return NewService(seed, WithLatency(latency.None()))
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkList(b *testing.B) {
	svc := setupBenchmarkService(b, 500)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.List(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterByCategory(b *testing.B) {
	svc := setupBenchmarkService(b, 500)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.FilterByCategory(ctx, 3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreate(b *testing.B) {
	svc := setupBenchmarkService(b, 100)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Create(ctx, CreateTaskRequest{Title: "bench"}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReorder(b *testing.B) {
	svc := setupBenchmarkService(b, 200)
	ctx := context.Background()
	order := make([]int, 200)
	for i := range order {
		order[i] = 200 - i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Reorder(ctx, order); err != nil {
			b.Fatal(err)
		}
	}
}
