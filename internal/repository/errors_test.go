package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr_ClassifiesTransientErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "deadline", err: context.DeadlineExceeded, transient: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, transient: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, transient: true},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, transient: true},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, transient: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, transient: false},
		{name: "plain error", err: errors.New("syntax error"), transient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapErr(tt.err, "failed to do something")

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.transient, errors.Is(err, apperr.ErrStoreUnavailable))
			assert.Contains(t, err.Error(), "failed to do something")
		})
	}
}

func TestWrapErr_KeepsApplicationErrors(t *testing.T) {
	cooldown := apperr.CooldownActive(time.Now())

	err := wrapErr(fmt.Errorf("tx: %w", cooldown), "failed to save check-in")

	assert.ErrorIs(t, err, apperr.ErrCooldownActive)
	assert.NotContains(t, err.Error(), "failed to save check-in")
}

func TestWrapErr_Nil(t *testing.T) {
	assert.NoError(t, wrapErr(nil, "unused"))
}
