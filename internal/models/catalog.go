package models

// Code - код типа инцидента из таблицы Codes
type Code struct {
	Code int    `json:"code"`
	Type string `json:"type"`
}

// Neighborhood - район из таблицы Neighborhoods
type Neighborhood struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
