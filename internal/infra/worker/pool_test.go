//go:build !integration

package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"resumepulse/internal/infra/worker"
)

func TestPool(t *testing.T) {
	t.Run("should run submitted tasks", func(t *testing.T) {
		pool := worker.NewPool(2, newTestLogger())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.Start(ctx)

		var wg sync.WaitGroup
		var mu sync.Mutex
		ran := 0
		for i := 0; i < 5; i++ {
			wg.Add(1)
			err := pool.Submit(func(ctx context.Context) error {
				defer wg.Done()
				mu.Lock()
				ran++
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Fatalf("submit failed: %v", err)
			}
		}

		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("tasks did not complete in time")
		}

		mu.Lock()
		defer mu.Unlock()
		if ran != 5 {
			t.Errorf("ran = %d, want 5", ran)
		}
		pool.Stop()
	})

	t.Run("should reject a nil task", func(t *testing.T) {
		pool := worker.NewPool(1, newTestLogger())
		if err := pool.Submit(nil); err == nil {
			t.Fatal("expected an error for a nil task")
		}
	})

	t.Run("should reject submissions beyond the queue bound", func(t *testing.T) {
		// Not started: nothing drains the queue, so capacity is exactly 4x.
		pool := worker.NewPool(1, newTestLogger())
		block := func(ctx context.Context) error { return nil }

		for i := 0; i < 4; i++ {
			if err := pool.Submit(block); err != nil {
				t.Fatalf("submit %d failed: %v", i, err)
			}
		}
		if err := pool.Submit(block); err == nil {
			t.Fatal("expected queue-full error")
		}
	})
}
