package v1

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// lenientFields - поля JSON-объекта запроса. Ошибки типов отдельных полей
// не отклоняют запрос: решение принимает вызывающий код.
type lenientFields map[string]json.RawMessage

func decodeLenient(data []byte) (lenientFields, error) {
	var fields lenientFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// text возвращает строковое значение поля; отсутствующее, null и нестроковое значение - nil
func (f lenientFields) text(key string) *string {
	raw, ok := f[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// number возвращает числовое значение поля. invalid=true, если поле есть, но не является числом.
func (f lenientFields) number(key string) (value *float64, invalid bool) {
	raw, ok := f[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, true
	}
	return &n, false
}

func (f lenientFields) address() AddressRequest {
	return AddressRequest{
		StreetName:       f.text("street_name"),
		StreetNumber:     f.text("street_number"),
		City:             f.text("city"),
		State:            f.text("state"),
		PostalCode:       f.text("postal_code"),
		Country:          f.text("country"),
		FormattedAddress: f.text("formatted_address"),
	}
}

// UnmarshalJSON разбирает запрос check-in. Нечисловая координата остается nil
// и отклоняется валидацией как некорректная координата.
func (r *SaveCheckInRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeLenient(data)
	if err != nil {
		return err
	}
	r.Latitude, _ = fields.number("latitude")
	r.Longitude, _ = fields.number("longitude")
	r.AddressRequest = fields.address()
	return nil
}

func (r *UpdateLocationRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeLenient(data)
	if err != nil {
		return err
	}
	r.Latitude, _ = fields.number("latitude")
	r.Longitude, _ = fields.number("longitude")
	r.AddressRequest = fields.address()
	return nil
}

func (r *NearbyUsersRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeLenient(data)
	if err != nil {
		return err
	}
	r.UserLatitude, _ = fields.number("user_latitude")
	r.UserLongitude, _ = fields.number("user_longitude")
	r.RadiusMeters, r.radiusInvalid = fields.number("radius_meters")
	return nil
}
