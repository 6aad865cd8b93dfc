package v1

import "strings"

// NewIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type NewIncidentRequest struct {
	CaseNumber         string `json:"case_number" validate:"required" example:"23000123"`
	Date               string `json:"date" validate:"required,datetime=2006-01-02" example:"2023-01-15"`
	Time               string `json:"time" validate:"required,datetime=15:04:05" example:"21:04:30"`
	Code               *int   `json:"code" validate:"required,gte=-2147483648,lte=2147483647" example:"110"`
	Incident           string `json:"incident" validate:"required" example:"Murder, Non Negligent Manslaughter"`
	PoliceGrid         *int   `json:"police_grid" validate:"required,gte=-2147483648,lte=2147483647" example:"87"`
	NeighborhoodNumber *int   `json:"neighborhood_number" validate:"required,gte=-2147483648,lte=2147483647" example:"7"`
	Block              string `json:"block" validate:"required" example:"98X UNIVERSITY AV W"`
}

// normalize обрезает пробелы, чтобы строка из одних пробелов считалась отсутствующим полем
func (r *NewIncidentRequest) normalize() {
	r.CaseNumber = strings.TrimSpace(r.CaseNumber)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Incident = strings.TrimSpace(r.Incident)
	r.Block = strings.TrimSpace(r.Block)
}

// RemoveIncidentRequest DTO для удаления инцидента
// @Description DTO для удаления инцидента
type RemoveIncidentRequest struct {
	CaseNumber string `json:"case_number" validate:"required" example:"23000123"`
}

func (r *RemoveIncidentRequest) normalize() {
	r.CaseNumber = strings.TrimSpace(r.CaseNumber)
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	CaseNumber         string `json:"case_number"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Code               int    `json:"code"`
	Incident           string `json:"incident"`
	PoliceGrid         int    `json:"police_grid"`
	NeighborhoodNumber int    `json:"neighborhood_number"`
	Block              string `json:"block"`
}

// CodeResponse DTO для кода инцидента
// @Description DTO для кода инцидента
type CodeResponse struct {
	Code int    `json:"code"`
	Type string `json:"type"`
}

// NeighborhoodResponse DTO для района
// @Description DTO для района
type NeighborhoodResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
