package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_checkin/internal/apperr"
)

// Коды ошибок транспортного уровня, не относящиеся к домену
const (
	codeInvalidRequest = "invalid_request"
	codeRateLimited    = "rate_limited"
)

// coordinateFields - поля DTO, отсутствие которых означает некорректную координату
var coordinateFields = map[string]struct{}{
	"Latitude":      {},
	"Longitude":     {},
	"UserLatitude":  {},
	"UserLongitude": {},
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidCoordinate, apperr.CodeInvalidRadius:
		return http.StatusBadRequest
	case apperr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperr.CodeCooldownActive:
		return http.StatusTooManyRequests
	case apperr.CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError пишет ошибку сервиса в едином формате.
// Неклассифицированные ошибки отдаются клиенту без подробностей.
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	body := ErrorResponse{
		Code:  string(appErr.Code),
		Error: appErr.Message,
	}

	if appErr.Code == apperr.CodeCooldownActive && appErr.NextAllowedAt != nil {
		body.NextAllowedAt = appErr.NextAllowedAt
		c.Header("Retry-After", retryAfterSeconds(*appErr.NextAllowedAt, time.Now()))
	}
	c.AbortWithStatusJSON(statusFor(appErr.Code), body)
}

func retryAfterSeconds(next, now time.Time) string {
	seconds := math.Ceil(next.Sub(now).Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(int(seconds))
}

// respondValidationError отличает отсутствующие координаты от прочих ошибок валидации
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if _, ok := coordinateFields[fe.StructField()]; ok {
				respondError(c, apperr.ErrInvalidCoordinate)
				return
			}
		}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Code: codeInvalidRequest, Error: err.Error()})
}

func respondBadRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Code: codeInvalidRequest, Error: "invalid request body"})
}
