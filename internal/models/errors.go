package models

import (
	"errors"
	"fmt"
)

var (
	// ErrIncidentExists - инцидент с таким case_number уже существует
	ErrIncidentExists = errors.New("incident already exists")
	// ErrIncidentNotFound - инцидент с таким case_number не найден
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrStorage - сбой хранилища, не связанный с входными данными
	ErrStorage = errors.New("storage failure")
)

// ValidationError - ошибка входных данных клиента, всегда относится к конкретному параметру
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NewValidationError создает ошибку валидации для параметра field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
