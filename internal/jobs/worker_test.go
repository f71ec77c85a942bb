package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnqueueRunsJobOnWorkerPool(t *testing.T) {
	worker := NewWorker(1)
	defer worker.Shutdown()

	done := make(chan struct{})
	worker.Enqueue(func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueued job never ran")
	}
}

func TestEnqueueFullQueueRunsSynchronously(t *testing.T) {
	// No processors, so jobs stay queued until the channel fills up
	worker := NewWorker(0)
	defer worker.Shutdown()

	blocker := func(ctx context.Context) error { return nil }
	for i := 0; i < cap(worker.queue); i++ {
		worker.Enqueue(blocker)
	}

	ran := false
	worker.Enqueue(func(ctx context.Context) error {
		ran = true
		return nil
	})

	assert.True(t, ran, "overflow job should run in the caller's goroutine")
}

func TestShutdownWaitsForProcessors(t *testing.T) {
	worker := NewWorker(2)

	started := make(chan struct{})
	finished := make(chan struct{})
	worker.Enqueue(func(ctx context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		close(finished)
		return nil
	})

	<-started
	worker.Shutdown()

	select {
	case <-finished:
	default:
		t.Fatal("Shutdown returned before the in-flight job finished")
	}
}
