package v1

import "github.com/shenikar/geo_checkin/internal/models"

// DTOToAddress преобразует адрес из запроса в доменную модель
func DTOToAddress(dto AddressRequest) models.Address {
	return models.Address{
		StreetName:       dto.StreetName,
		StreetNumber:     dto.StreetNumber,
		City:             dto.City,
		State:            dto.State,
		PostalCode:       dto.PostalCode,
		Country:          dto.Country,
		FormattedAddress: dto.FormattedAddress,
	}
}

// ModelToCheckInResponse преобразует доменную модель в DTO для ответа
func ModelToCheckInResponse(model *models.CheckInRecord) *CheckInResponse {
	return &CheckInResponse{
		ID:               model.ID,
		UserID:           model.UserID,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		StreetName:       model.StreetName,
		StreetNumber:     model.StreetNumber,
		City:             model.City,
		State:            model.State,
		PostalCode:       model.PostalCode,
		Country:          model.Country,
		FormattedAddress: model.FormattedAddress,
		CheckedInAt:      model.CheckedInAt,
	}
}

// ModelsToCheckInResponses преобразует слайс моделей в слайс DTO
func ModelsToCheckInResponses(models []*models.CheckInRecord) []*CheckInResponse {
	responses := make([]*CheckInResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCheckInResponse(model)
	}
	return responses
}

func ModelToLocationResponse(model *models.LocationRecord) *LocationResponse {
	return &LocationResponse{
		UserID:           model.UserID,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		StreetName:       model.StreetName,
		StreetNumber:     model.StreetNumber,
		City:             model.City,
		State:            model.State,
		PostalCode:       model.PostalCode,
		Country:          model.Country,
		FormattedAddress: model.FormattedAddress,
		UpdatedAt:        model.UpdatedAt,
	}
}

// ModelsToNearbyUserResponses преобразует выдачу поиска рядом, сохраняя порядок
func ModelsToNearbyUserResponses(users []*models.NearbyUser) []*NearbyUserResponse {
	responses := make([]*NearbyUserResponse, len(users))
	for i, u := range users {
		responses[i] = &NearbyUserResponse{
			UserID:             u.UserID,
			DisplayName:        u.DisplayName,
			AvatarURL:          u.AvatarURL,
			StreetName:         u.StreetName,
			StreetNumber:       u.StreetNumber,
			City:               u.City,
			DistanceMeters:     u.DistanceMeters,
			LastLocationUpdate: u.LastLocationUpdate,
		}
	}
	return responses
}
