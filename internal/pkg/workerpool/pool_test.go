package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	ctx := context.Background()
	p := New(4, 16)
	done := make(chan struct{})
	var count int64
	go func() {
		defer close(done)
		for i := 0; i < 40; i++ {
			if !p.Submit(ctx, func(ctx context.Context) error {
				atomic.AddInt64(&count, 1)
				return nil
			}) {
				t.Errorf("submit %d rejected", i)
				return
			}
		}
		p.Close()
	}()

	results := 0
	for r := range p.Run(ctx) {
		if r.Err != nil {
			t.Fatalf("unexpected task error: %v", r.Err)
		}
		results++
	}
	<-done
	if results != 40 {
		t.Fatalf("got %d results, want 40", results)
	}
	if got := atomic.LoadInt64(&count); got != 40 {
		t.Fatalf("ran %d tasks, want 40", got)
	}
}

func TestPoolReportsTaskErrors(t *testing.T) {
	ctx := context.Background()
	p := New(2, 4)
	sentinel := errors.New("boom")
	p.Submit(ctx, func(ctx context.Context) error { return sentinel })
	p.Submit(ctx, func(ctx context.Context) error { return nil })
	p.Close()

	var failures int
	for r := range p.Run(ctx) {
		if r.Err != nil {
			if !errors.Is(r.Err, sentinel) {
				t.Fatalf("unexpected error: %v", r.Err)
			}
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("got %d failures, want 1", failures)
	}
}

func TestPoolStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(2, 1)
	p.Close()
	for range p.Run(ctx) {
	}
}

func TestSubmitUnblocksOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := New(1, 0)
	results := p.Run(ctx)
	block := make(chan struct{})
	p.Submit(context.Background(), func(ctx context.Context) error {
		<-block
		return nil
	})

	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		// The single worker is busy and the buffer is full, so this
		// blocks until cancellation.
		for p.Submit(ctx, func(ctx context.Context) error { return nil }) {
		}
	}()

	cancel()
	select {
	case <-producerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("producer still blocked in Submit after cancellation")
	}

	close(block)
	for range results {
	}
}
