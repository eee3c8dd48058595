package v1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCheckInRequest_LenientDecoding(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLat   *float64
		wantCity  *string
		wantState *string
	}{
		{
			name:     "all strings",
			body:     `{"latitude": -23.5, "longitude": -46.6, "city": "São Paulo"}`,
			wantLat:  ptr(-23.5),
			wantCity: ptr("São Paulo"),
		},
		{
			name:      "numeric city becomes absent",
			body:      `{"latitude": 1, "longitude": 2, "city": 123, "state": "SP"}`,
			wantLat:   ptr(1.0),
			wantState: ptr("SP"),
		},
		{
			name:    "object and array fields become absent",
			body:    `{"latitude": 1, "longitude": 2, "city": {"name": "x"}, "state": ["SP"]}`,
			wantLat: ptr(1.0),
		},
		{
			name: "string latitude becomes absent",
			body: `{"latitude": "91", "longitude": 2, "city": null}`,
		},
		{
			name: "null latitude is absent",
			body: `{"latitude": null, "longitude": 2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SaveCheckInRequest

			err := json.Unmarshal([]byte(tt.body), &req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLat, req.Latitude)
			assert.Equal(t, tt.wantCity, req.City)
			assert.Equal(t, tt.wantState, req.State)
		})
	}
}

func TestSaveCheckInRequest_RejectsNonObjectBody(t *testing.T) {
	var req SaveCheckInRequest

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &req))
	assert.Error(t, json.Unmarshal([]byte(`"latitude"`), &req))
}

func TestNearbyUsersRequest_RadiusDecoding(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantRadius  *float64
		wantInvalid bool
	}{
		{name: "omitted", body: `{"user_latitude": 1, "user_longitude": 1}`},
		{name: "null", body: `{"user_latitude": 1, "user_longitude": 1, "radius_meters": null}`},
		{name: "zero", body: `{"user_latitude": 1, "user_longitude": 1, "radius_meters": 0}`, wantRadius: ptr(0.0)},
		{name: "number", body: `{"user_latitude": 1, "user_longitude": 1, "radius_meters": 250}`, wantRadius: ptr(250.0)},
		{name: "string", body: `{"user_latitude": 1, "user_longitude": 1, "radius_meters": "far"}`, wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req NearbyUsersRequest

			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantRadius, req.RadiusMeters)
			assert.Equal(t, tt.wantInvalid, req.radiusInvalid)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
