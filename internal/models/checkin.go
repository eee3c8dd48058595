package models

import (
	"time"

	"github.com/google/uuid"
)

// Coordinate - географическая точка в WGS 84
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address - структурированный адрес, уже разрешенный внешним геокодером.
// Отсутствующее поле - nil, а не пустая строка.
type Address struct {
	StreetName       *string `json:"street_name,omitempty"`
	StreetNumber     *string `json:"street_number,omitempty"`
	City             *string `json:"city,omitempty"`
	State            *string `json:"state,omitempty"`
	PostalCode       *string `json:"postal_code,omitempty"`
	Country          *string `json:"country,omitempty"`
	FormattedAddress *string `json:"formatted_address,omitempty"`
}

// CheckInRecord - неизменяемая запись журнала check-in пользователя
type CheckInRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address
	CheckedInAt time.Time `json:"checked_in_at"`
}

// Location возвращает запись текущего местоположения, соответствующую check-in
func (c *CheckInRecord) Location() *LocationRecord {
	return &LocationRecord{
		UserID:    c.UserID,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Address:   c.Address,
		UpdatedAt: c.CheckedInAt,
	}
}

// CooldownStatus - состояние кулдауна для отображения обратного отсчета на клиенте
type CooldownStatus struct {
	CanCheckIn    bool       `json:"can_check_in"`
	NextAllowedAt *time.Time `json:"next_allowed_at,omitempty"`
}

// UserStats - агрегированная статистика check-in пользователя
type UserStats struct {
	TotalCheckIns   int        `json:"total_checkins"`
	PlacesVisited   int        `json:"places_visited"`
	LastCheckedInAt *time.Time `json:"last_checked_in_at,omitempty"`
}
