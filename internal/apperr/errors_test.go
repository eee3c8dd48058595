package apperr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownActive_CarriesNextAllowedAt(t *testing.T) {
	next := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	err := CooldownActive(next)

	require.NotNil(t, err.NextAllowedAt)
	assert.True(t, next.Equal(*err.NextAllowedAt))
	assert.Equal(t, CodeCooldownActive, err.Code)
	assert.Contains(t, err.Error(), "2026-01-02T15:04:05Z")
}

func TestIs_MatchesByCodeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: could not save check-in: %w", CooldownActive(time.Now()))

	assert.True(t, errors.Is(wrapped, ErrCooldownActive))
	assert.False(t, errors.Is(wrapped, ErrInvalidCoordinate))
}

func TestStoreUnavailable_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")

	err := StoreUnavailable(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.True(t, err.Retryable())
}

func TestFrom_UnclassifiedBecomesUnknown(t *testing.T) {
	err := From(errors.New("boom"))

	assert.Equal(t, CodeUnknown, err.Code)
	assert.Equal(t, "internal server error", err.Message)
	assert.False(t, err.Retryable())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(nil))
	assert.Equal(t, CodeInvalidRadius, CodeOf(fmt.Errorf("wrap: %w", ErrInvalidRadius)))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
}
