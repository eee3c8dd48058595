package service

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/models"
)

// MaxAddressFieldLength - максимальная длина текстового поля адреса в символах
const MaxAddressFieldLength = 255

// ValidateCoordinate проверяет, что координаты конечны и лежат в допустимых диапазонах
func ValidateCoordinate(c models.Coordinate) error {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) {
		return apperr.ErrInvalidCoordinate
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return apperr.ErrInvalidCoordinate
	}
	return nil
}

// ResolveRadius подставляет радиус по умолчанию, если он не передан, и проверяет его
func ResolveRadius(radius *float64, defaultRadius float64) (float64, error) {
	if radius == nil {
		return defaultRadius, nil
	}
	if !isFinite(*radius) || *radius <= 0 {
		return 0, apperr.ErrInvalidRadius
	}
	return *radius, nil
}

// SanitizeAddress очищает и обрезает все текстовые поля адреса
func SanitizeAddress(a models.Address) models.Address {
	return models.Address{
		StreetName:       sanitizeField(a.StreetName),
		StreetNumber:     sanitizeField(a.StreetNumber),
		City:             sanitizeField(a.City),
		State:            sanitizeField(a.State),
		PostalCode:       sanitizeField(a.PostalCode),
		Country:          sanitizeField(a.Country),
		FormattedAddress: sanitizeField(a.FormattedAddress),
	}
}

// sanitizeField удаляет управляющие символы, обрезает пробелы и длину.
// Пустое после очистки значение считается отсутствующим.
func sanitizeField(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, *s)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}
	if utf8.RuneCountInString(cleaned) > MaxAddressFieldLength {
		cleaned = string([]rune(cleaned)[:MaxAddressFieldLength])
	}
	return &cleaned
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
