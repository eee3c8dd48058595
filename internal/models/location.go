package models

import (
	"time"
)

// LocationRecord - последнее известное местоположение пользователя (одна запись на пользователя)
type LocationRecord struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address
	UpdatedAt time.Time `json:"updated_at"`
}

// NearbyQuery - параметры выборки кандидатов для поиска пользователей рядом
type NearbyQuery struct {
	CallerID     string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	ActiveSince  time.Time
}

// NearbyCandidate - строка из хранилища до фильтрации по точному расстоянию
type NearbyCandidate struct {
	UserID       string
	DisplayName  string
	AvatarURL    *string
	Latitude     float64
	Longitude    float64
	StreetName   *string
	StreetNumber *string
	City         *string
	UpdatedAt    time.Time
}

// NearbyUser - пользователь рядом. Контактные данные сюда не попадают.
type NearbyUser struct {
	UserID             string    `json:"user_id"`
	DisplayName        string    `json:"display_name"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	StreetName         *string   `json:"street_name,omitempty"`
	StreetNumber       *string   `json:"street_number,omitempty"`
	City               *string   `json:"city,omitempty"`
	DistanceMeters     float64   `json:"distance_meters"`
	LastLocationUpdate time.Time `json:"last_location_update"`
}
