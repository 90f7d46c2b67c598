package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cassiomorais/payment-gateway/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsAfterFailures(t *testing.T) {
	cfg := retry.Config{MaxAttempts: 5, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

	attempts := 0
	err := retry.Do(context.Background(), cfg, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ReturnsLastError(t *testing.T) {
	cfg := retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}

	sentinel := errors.New("still broken")
	err := retry.Do(context.Background(), cfg, func() error { return sentinel })

	assert.ErrorIs(t, err, sentinel)
}

func TestDo_CallsOnRetry(t *testing.T) {
	var notified []uint
	cfg := retry.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		OnRetry:      func(attempt uint, err error) { notified = append(notified, attempt) },
	}

	_ = retry.Do(context.Background(), cfg, func() error { return errors.New("boom") })

	assert.NotEmpty(t, notified)
}
