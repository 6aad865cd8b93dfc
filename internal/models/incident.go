package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout - формат даты инцидента (YYYY-MM-DD)
	DateLayout = "2006-01-02"
	// TimeLayout - формат времени инцидента (HH:MM:SS)
	TimeLayout = "15:04:05"
)

// Incident - запись о преступлении из таблицы Incidents
type Incident struct {
	CaseNumber         string `json:"case_number"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Code               int    `json:"code"`
	Incident           string `json:"incident"`
	PoliceGrid         int    `json:"police_grid"`
	NeighborhoodNumber int    `json:"neighborhood_number"`
	Block              string `json:"block"`
}

// Timestamp объединяет дату и время инцидента в одну метку времени для хранения в бд
func (i *Incident) Timestamp() (time.Time, error) {
	ts, err := time.Parse(DateLayout+" "+TimeLayout, i.Date+" "+i.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time for incident %s: %w", i.CaseNumber, err)
	}
	return ts, nil
}
