package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExecutePropagatesResultWithoutReattempt(t *testing.T) {
	executor := NewExecutor(DefaultConfig())

	calls := 0
	failure := errors.New("backend down")
	err := executor.Execute(context.Background(), "upload", func(context.Context) error {
		calls++
		return failure
	}, nil)

	if !errors.Is(err, failure) {
		t.Fatalf("expected original error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("a failed call must not be re-attempted, got %d calls", calls)
	}
}

func TestBreakerOpensAfterRecordedFailures(t *testing.T) {
	executor := NewExecutor(Config{
		BreakerEnabled:      true,
		BreakerMinRequests:  3,
		BreakerFailureRatio: 0.5,
		BreakerOpenTimeout:  time.Minute,
	})

	failure := errors.New("backend down")
	for i := 0; i < 3; i++ {
		_ = executor.Execute(context.Background(), "upload", func(context.Context) error {
			return failure
		}, nil)
	}

	calls := 0
	err := executor.Execute(context.Background(), "upload", func(context.Context) error {
		calls++
		return nil
	}, nil)

	if !IsCircuitOpen(err) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("open circuit must fail fast, got %d calls", calls)
	}
}

func TestClassifierKeepsUserErrorsOffTheBreaker(t *testing.T) {
	executor := NewExecutor(Config{
		BreakerEnabled:      true,
		BreakerMinRequests:  3,
		BreakerFailureRatio: 0.5,
		BreakerOpenTimeout:  time.Minute,
	})

	userErr := errors.New("validation rejected")
	ignore := func(error) ErrorClassification {
		return ErrorClassification{RecordFailure: false}
	}
	for i := 0; i < 10; i++ {
		_ = executor.Execute(context.Background(), "upload", func(context.Context) error {
			return userErr
		}, ignore)
	}

	err := executor.Execute(context.Background(), "upload", func(context.Context) error {
		return nil
	}, ignore)
	if err != nil {
		t.Fatalf("breaker must stay closed for unrecorded failures, got %v", err)
	}
}

func TestDisabledBreakerCallsDirectly(t *testing.T) {
	executor := NewExecutor(Config{BreakerEnabled: false})

	calls := 0
	err := executor.Execute(context.Background(), "query", func(context.Context) error {
		calls++
		return nil
	}, nil)
	if err != nil || calls != 1 {
		t.Fatalf("expected direct call, err=%v calls=%d", err, calls)
	}
}

func TestExecuteRespectsCancelledContext(t *testing.T) {
	executor := NewExecutor(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := executor.Execute(ctx, "status", func(context.Context) error {
		calls++
		return nil
	}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("cancelled context must not invoke the call, got %d", calls)
	}
}
