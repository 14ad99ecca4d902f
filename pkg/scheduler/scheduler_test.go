package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type jobRecorder struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (j *jobRecorder) run(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.calls++

	return j.err
}

func (j *jobRecorder) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.calls
}

func TestNewValidatesInput(t *testing.T) {
	t.Run("empty expression", func(t *testing.T) {
		if _, err := New("", func(context.Context) error { return nil }); err == nil {
			t.Fatalf("expected error when expression empty")
		}
	})

	t.Run("nil job", func(t *testing.T) {
		if _, err := New("@hourly", nil); err == nil {
			t.Fatalf("expected error when job nil")
		}
	})

	t.Run("invalid expression", func(t *testing.T) {
		if _, err := New("not a cron", func(context.Context) error { return nil }); err == nil {
			t.Fatalf("expected error when expression invalid")
		}
	})
}

func TestRunInvokesJob(t *testing.T) {
	recorder := &jobRecorder{}

	s, err := New("@hourly", recorder.run)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err = s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if recorder.count() != 1 {
		t.Fatalf("job calls: %d", recorder.count())
	}
}

func TestRunPropagatesJobError(t *testing.T) {
	recorder := &jobRecorder{err: errors.New("sweep failed")}

	s, err := New("@hourly", recorder.run)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err = s.Run(nil); err == nil {
		t.Fatalf("expected job error")
	}
}

func TestStartIsSingleUse(t *testing.T) {
	recorder := &jobRecorder{}

	s, err := New("@every 1h", recorder.run)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = s.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err = s.Start(ctx); err == nil {
		t.Fatalf("second start should fail")
	}

	s.Stop()
	s.Stop() // idempotent
}

func TestJobTimeoutAppliesDeadline(t *testing.T) {
	sawDeadline := false

	job := func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return nil
	}

	s, err := New("@hourly", job, WithJobTimeout(time.Minute))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err = s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !sawDeadline {
		t.Fatalf("job should see a deadline")
	}
}
