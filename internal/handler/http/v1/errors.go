package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/stpaul_crime_api/internal/models"
	"github.com/sirupsen/logrus"
)

// respondError сопоставляет ошибку с HTTP-статусом.
// Текст ошибок хранилища клиенту не отдается, только пишется в лог.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.WithError(err).Warn("Invalid request parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, models.ErrIncidentExists):
		log.WithError(err).Warn("Incident already exists")
		c.JSON(http.StatusConflict, gin.H{"error": "incident with this case_number already exists"})
	case errors.Is(err, models.ErrIncidentNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	default:
		log.WithError(err).Error("Storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// validationMessage формирует сообщение по первой ошибке валидации тела запроса
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return "invalid request body"
	}

	fe := vErrs[0]
	switch fe.Tag() {
	case "required":
		return "missing required field: " + fe.Field()
	case "datetime":
		return fmt.Sprintf("invalid field %s: expected format %s", fe.Field(), humanLayout(fe.Param()))
	case "gte", "lte":
		return fmt.Sprintf("invalid field %s: value out of range", fe.Field())
	default:
		return "invalid field " + fe.Field()
	}
}

func humanLayout(layout string) string {
	switch layout {
	case models.DateLayout:
		return "YYYY-MM-DD"
	case models.TimeLayout:
		return "HH:MM:SS"
	default:
		return layout
	}
}
