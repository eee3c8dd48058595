package service

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		coord   models.Coordinate
		wantErr bool
	}{
		{name: "Sao Paulo", coord: models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}},
		{name: "poles and antimeridian", coord: models.Coordinate{Latitude: 90, Longitude: -180}},
		{name: "origin", coord: models.Coordinate{Latitude: 0, Longitude: 0}},
		{name: "latitude 91", coord: models.Coordinate{Latitude: 91, Longitude: 0}, wantErr: true},
		{name: "latitude -90.0001", coord: models.Coordinate{Latitude: -90.0001, Longitude: 0}, wantErr: true},
		{name: "longitude 180.5", coord: models.Coordinate{Latitude: 0, Longitude: 180.5}, wantErr: true},
		{name: "NaN latitude", coord: models.Coordinate{Latitude: math.NaN(), Longitude: 0}, wantErr: true},
		{name: "infinite longitude", coord: models.Coordinate{Latitude: 0, Longitude: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.coord)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrInvalidCoordinate)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestResolveRadius(t *testing.T) {
	ptr := func(f float64) *float64 { return &f }

	got, err := ResolveRadius(nil, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	got, err = ResolveRadius(ptr(250.5), 1000)
	require.NoError(t, err)
	assert.Equal(t, 250.5, got)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ResolveRadius(ptr(bad), 1000)
		assert.ErrorIs(t, err, apperr.ErrInvalidRadius, "radius %v", bad)
	}
}

func TestSanitizeAddress(t *testing.T) {
	str := func(s string) *string { return &s }
	long := strings.Repeat("ã", 300)

	got := SanitizeAddress(models.Address{
		StreetName:       str("  Avenida Paulista \n"),
		StreetNumber:     str("   "),
		City:             str("São\x00 Paulo"),
		FormattedAddress: str(long),
	})

	require.NotNil(t, got.StreetName)
	assert.Equal(t, "Avenida Paulista", *got.StreetName)
	assert.Nil(t, got.StreetNumber, "blank field becomes absent")
	require.NotNil(t, got.City)
	assert.Equal(t, "São Paulo", *got.City)
	assert.Nil(t, got.State)
	require.NotNil(t, got.FormattedAddress)
	assert.Equal(t, MaxAddressFieldLength, utf8.RuneCountInString(*got.FormattedAddress))
}
