package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestExecute_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := New(fastConfig()).Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestExecute_ExhaustsBudget(t *testing.T) {
	attempts := 0
	err := New(fastConfig()).Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return errors.New("still down")
	})

	assert.Error(t, err)
	assert.Equal(t, 4, attempts, "initial attempt plus three retries")
	assert.Contains(t, err.Error(), "retry limit exceeded")
}

func TestExecute_NonRetryableErrorStopsImmediately(t *testing.T) {
	permanent := errors.New("permanent")
	cfg := fastConfig()
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, permanent) }

	attempts := 0
	err := New(cfg).Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestExecute_ContextCancellationWins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWithDefaults().Execute(ctx, func(ctx context.Context) error {
		return errors.New("never reached on cancelled context")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
