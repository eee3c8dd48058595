package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/geo_checkin/internal/apperr"
)

// wrapErr оборачивает ошибку хранилища; временные сбои становятся apperr.StoreUnavailable
func wrapErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	wrapped := fmt.Errorf("%s: %w", msg, err)
	if isTransient(err) {
		return apperr.StoreUnavailable(wrapped)
	}
	return wrapped
}

// isTransient определяет ошибки, после которых запрос можно безопасно повторить
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
			return true
		}
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsInsufficientResources(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code)
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
