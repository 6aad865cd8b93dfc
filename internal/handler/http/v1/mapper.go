package v1

import "github.com/shenikar/stpaul_crime_api/internal/models"

// DTOToIncidentModel преобразует DTO создания в доменную модель.
// Вызывается только после валидации, поэтому указатели не nil.
func DTOToIncidentModel(dto NewIncidentRequest) *models.Incident {
	return &models.Incident{
		CaseNumber:         dto.CaseNumber,
		Date:               dto.Date,
		Time:               dto.Time,
		Code:               *dto.Code,
		Incident:           dto.Incident,
		PoliceGrid:         *dto.PoliceGrid,
		NeighborhoodNumber: *dto.NeighborhoodNumber,
		Block:              dto.Block,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		CaseNumber:         model.CaseNumber,
		Date:               model.Date,
		Time:               model.Time,
		Code:               model.Code,
		Incident:           model.Incident,
		PoliceGrid:         model.PoliceGrid,
		NeighborhoodNumber: model.NeighborhoodNumber,
		Block:              model.Block,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelsToCodeResponses преобразует коды в DTO
func ModelsToCodeResponses(codes []*models.Code) []*CodeResponse {
	responses := make([]*CodeResponse, len(codes))
	for i, code := range codes {
		responses[i] = &CodeResponse{Code: code.Code, Type: code.Type}
	}
	return responses
}

// ModelsToNeighborhoodResponses преобразует районы в DTO
func ModelsToNeighborhoodResponses(neighborhoods []*models.Neighborhood) []*NeighborhoodResponse {
	responses := make([]*NeighborhoodResponse, len(neighborhoods))
	for i, neighborhood := range neighborhoods {
		responses[i] = &NeighborhoodResponse{ID: neighborhood.ID, Name: neighborhood.Name}
	}
	return responses
}
