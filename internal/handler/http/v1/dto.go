package v1

import (
	"time"

	"github.com/google/uuid"
)

// AddressRequest - адрес, уже разрешенный геокодером на клиенте.
// Нестроковые значения считаются отсутствующими, длинные обрезаются сервисом.
// @Description Адрес, уже разрешенный геокодером на клиенте
type AddressRequest struct {
	StreetName       *string `json:"street_name,omitempty"`
	StreetNumber     *string `json:"street_number,omitempty"`
	City             *string `json:"city,omitempty"`
	State            *string `json:"state,omitempty"`
	PostalCode       *string `json:"postal_code,omitempty"`
	Country          *string `json:"country,omitempty"`
	FormattedAddress *string `json:"formatted_address,omitempty"`
}

// SaveCheckInRequest DTO для check-in
// @Description DTO для check-in
type SaveCheckInRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	AddressRequest
}

// UpdateLocationRequest DTO для обновления местоположения без check-in
// @Description DTO для обновления местоположения без check-in
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	AddressRequest
}

// NearbyUsersRequest DTO для поиска пользователей рядом
// @Description DTO для поиска пользователей рядом. radius_meters по умолчанию 1000.
type NearbyUsersRequest struct {
	UserLatitude  *float64 `json:"user_latitude" validate:"required"`
	UserLongitude *float64 `json:"user_longitude" validate:"required"`
	RadiusMeters  *float64 `json:"radius_meters,omitempty"`

	radiusInvalid bool
}

// CheckInResponse DTO для ответа с check-in
// @Description DTO для ответа с check-in
type CheckInResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           string    `json:"user_id"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	StreetName       *string   `json:"street_name,omitempty"`
	StreetNumber     *string   `json:"street_number,omitempty"`
	City             *string   `json:"city,omitempty"`
	State            *string   `json:"state,omitempty"`
	PostalCode       *string   `json:"postal_code,omitempty"`
	Country          *string   `json:"country,omitempty"`
	FormattedAddress *string   `json:"formatted_address,omitempty"`
	CheckedInAt      time.Time `json:"checked_in_at"`
}

// LocationResponse DTO для ответа с текущим местоположением
// @Description DTO для ответа с текущим местоположением
type LocationResponse struct {
	UserID           string    `json:"user_id"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	StreetName       *string   `json:"street_name,omitempty"`
	StreetNumber     *string   `json:"street_number,omitempty"`
	City             *string   `json:"city,omitempty"`
	State            *string   `json:"state,omitempty"`
	PostalCode       *string   `json:"postal_code,omitempty"`
	Country          *string   `json:"country,omitempty"`
	FormattedAddress *string   `json:"formatted_address,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NearbyUserResponse DTO пользователя рядом
// @Description DTO пользователя рядом
type NearbyUserResponse struct {
	UserID             string    `json:"user_id"`
	DisplayName        string    `json:"display_name"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	StreetName         *string   `json:"street_name,omitempty"`
	StreetNumber       *string   `json:"street_number,omitempty"`
	City               *string   `json:"city,omitempty"`
	DistanceMeters     float64   `json:"distance_meters"`
	LastLocationUpdate time.Time `json:"last_location_update"`
}

// CooldownResponse DTO состояния кулдауна
// @Description DTO состояния кулдауна
type CooldownResponse struct {
	CanCheckIn    bool       `json:"can_check_in"`
	NextAllowedAt *time.Time `json:"next_allowed_at,omitempty"`
}

// UserStatsResponse DTO статистики пользователя
// @Description DTO статистики пользователя
type UserStatsResponse struct {
	TotalCheckIns   int        `json:"total_checkins"`
	PlacesVisited   int        `json:"places_visited"`
	LastCheckedInAt *time.Time `json:"last_checked_in_at,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ActiveUsers int `json:"active_users"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Code          string     `json:"code"`
	Error         string     `json:"error"`
	NextAllowedAt *time.Time `json:"next_allowed_at,omitempty"`
}
