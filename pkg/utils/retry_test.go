package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pahana/bookshop-order-service/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")

	testCases := []struct {
		name        string
		failFirst   int
		attempts    int
		wantCalls   int
		wantRetries []int
		wantErr     error
	}{
		{name: "first attempt succeeds", failFirst: 0, attempts: 3, wantCalls: 1},
		{name: "succeeds after failures", failFirst: 2, attempts: 3, wantCalls: 3, wantRetries: []int{1, 2}},
		{name: "gives up", failFirst: 5, attempts: 3, wantCalls: 3, wantRetries: []int{1, 2}, wantErr: errTemporary},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			var retries []int
			cfg := utils.RetryConfig{
				MaxAttempts:  tc.attempts,
				InitialDelay: time.Millisecond,
				OnRetry: func(attempt int, err error, _ time.Duration) {
					assert.ErrorIs(t, err, errTemporary)
					retries = append(retries, attempt)
				},
			}

			err := utils.Retry(context.Background(), cfg, func(context.Context) error {
				calls++
				if calls <= tc.failFirst {
					return errTemporary
				}
				return nil
			})

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantCalls, calls)
			assert.Equal(t, tc.wantRetries, retries)
		})
	}
}

func TestRetry_BackoffIsCapped(t *testing.T) {
	var delays []time.Duration
	cfg := utils.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
		MaxDelay:     3 * time.Millisecond,
		OnRetry: func(_ int, _ error, delay time.Duration) {
			delays = append(delays, delay)
		},
	}

	err := utils.Retry(context.Background(), cfg, func(context.Context) error { return errors.New("down") })
	require.Error(t, err)

	assert.Equal(t, []time.Duration{
		time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond, 3 * time.Millisecond,
	}, delays)
}

func TestRetry_CancelledDuringBackoff(t *testing.T) {
	errDown := errors.New("connection refused")
	ctx, cancel := context.WithCancel(context.Background())

	cfg := utils.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Hour,
		OnRetry: func(int, error, time.Duration) {
			cancel()
		},
	}

	calls := 0
	start := time.Now()
	err := utils.Retry(ctx, cfg, func(context.Context) error {
		calls++
		return errDown
	})

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errDown)
}

func TestRetry_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := utils.Retry(ctx, utils.RetryConfig{}, func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
