package utils

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	logger := NewNopLogger()

	t.Run("SucceedsAfterFailures", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		}, logger)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("WrapsLastError", func(t *testing.T) {
		boom := errors.New("boom")
		err := retry(context.Background(), 2, time.Millisecond, func() error { return boom }, logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "all 2 attempts failed")
	})

	t.Run("StopsOnCancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := retry(ctx, 5, time.Hour, func() error {
			calls++
			cancel()
			return errors.New("fail")
		}, logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("AtLeastOneAttempt", func(t *testing.T) {
		calls := 0
		require.NoError(t, retry(context.Background(), 0, time.Millisecond, func() error {
			calls++
			return nil
		}, logger))
		assert.Equal(t, 1, calls)
	})
}

func TestFormatMoney(t *testing.T) {
	got := FormatMoney(36354, "eur")
	assert.True(t, strings.HasPrefix(got, "EUR "), got)
	assert.NotContains(t, got, ".")

	assert.True(t, strings.HasPrefix(FormatMoney(12, "XYZ1"), "XYZ1 "))
	assert.Equal(t, "7", FormatMoney(7, ""))
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	b, err := Fingerprint(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)
	c, err := Fingerprint(map[string]int{"a": 1, "b": 3})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	_, err = Fingerprint(make(chan int))
	assert.Error(t, err)
}
