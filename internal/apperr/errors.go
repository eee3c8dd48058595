// Package apperr описывает таксономию ошибок, которую сервисы возвращают транспортному слою.
package apperr

import (
	"errors"
	"fmt"
	"time"
)

// Code - машиночитаемый код ошибки
type Code string

const (
	CodeInvalidCoordinate Code = "invalid_coordinate"
	CodeInvalidRadius     Code = "invalid_radius"
	CodeUnauthenticated   Code = "unauthenticated"
	CodeCooldownActive    Code = "cooldown_active"
	CodeStoreUnavailable  Code = "store_unavailable"
	CodeUnknown           Code = "unknown"
)

// Error - ошибка с кодом, безопасным для показа сообщением и необязательной причиной.
type Error struct {
	Code    Code
	Message string
	// NextAllowedAt заполняется только для CodeCooldownActive
	NextAllowedAt *time.Time
	Err           error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по коду, поэтому errors.Is(err, ErrCooldownActive) работает для любого экземпляра.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Retryable сообщает, имеет ли смысл повторить запрос без изменений
func (e *Error) Retryable() bool {
	return e.Code == CodeStoreUnavailable || e.Code == CodeCooldownActive
}

var (
	ErrInvalidCoordinate = &Error{
		Code:    CodeInvalidCoordinate,
		Message: "latitude must be a finite number in [-90, 90] and longitude in [-180, 180]",
	}
	ErrInvalidRadius = &Error{
		Code:    CodeInvalidRadius,
		Message: "radius_meters must be a positive finite number",
	}
	ErrUnauthenticated = &Error{
		Code:    CodeUnauthenticated,
		Message: "authentication required",
	}
	ErrCooldownActive = &Error{
		Code:    CodeCooldownActive,
		Message: "check-in cooldown is active",
	}
	ErrStoreUnavailable = &Error{
		Code:    CodeStoreUnavailable,
		Message: "storage is temporarily unavailable, please retry",
	}
	ErrUnknown = &Error{
		Code:    CodeUnknown,
		Message: "internal server error",
	}
)

// CooldownActive создает ошибку активного кулдауна с моментом, когда check-in снова разрешен.
func CooldownActive(nextAllowedAt time.Time) *Error {
	next := nextAllowedAt.UTC()
	return &Error{
		Code:          CodeCooldownActive,
		Message:       fmt.Sprintf("check-in cooldown is active until %s", next.Format(time.RFC3339)),
		NextAllowedAt: &next,
	}
}

// StoreUnavailable оборачивает временный сбой хранилища.
func StoreUnavailable(err error) *Error {
	return &Error{
		Code:    CodeStoreUnavailable,
		Message: ErrStoreUnavailable.Message,
		Err:     err,
	}
}

// Unknown оборачивает неклассифицированную ошибку.
func Unknown(err error) *Error {
	return &Error{
		Code:    CodeUnknown,
		Message: ErrUnknown.Message,
		Err:     err,
	}
}

// From извлекает *Error из цепочки; неклассифицированные ошибки становятся CodeUnknown.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unknown(err)
}

// CodeOf возвращает код ошибки или CodeUnknown
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	return From(err).Code
}
