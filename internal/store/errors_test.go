package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrJobNotFound", err: ErrJobNotFound, expected: true},
		{name: "ErrResultNotFound", err: ErrResultNotFound, expected: true},
		{
			name:     "wrapped ErrJobNotFound",
			err:      fmt.Errorf("failed to load job: %w", ErrJobNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping ErrJobNotFound",
			err:      NewStoreError("job", "update_status", "job missing", ErrJobNotFound),
			expected: true,
		},
		{name: "ErrJobExists", err: ErrJobExists, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("job", "create", "job already stored", ErrJobExists)

		assert.Equal(t, "create operation on job failed: job already stored: entity already exists: job", err.Error())
		assert.ErrorIs(t, err, ErrJobExists)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("result", "get", "nothing stored", nil)

		assert.Equal(t, "get operation on result failed: nothing stored", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})
}

func TestStoreError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("finalize: %w",
		NewStoreError("job", "finalize", "transition rejected", ErrUpdateFailed))

	var storeErr *StoreError
	if assert.ErrorAs(t, wrapped, &storeErr) {
		assert.Equal(t, "job", storeErr.Entity)
		assert.Equal(t, "finalize", storeErr.Operation)
		assert.ErrorIs(t, storeErr, ErrUpdateFailed)
	}
}
