package v1

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/stpaul_crime_api/internal/config"
	"github.com/shenikar/stpaul_crime_api/internal/filter"
	"github.com/shenikar/stpaul_crime_api/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	catalogService  service.CatalogService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, catalogService service.CatalogService, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// В сообщениях об ошибках используем имена полей из JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		incidentService: incidentService,
		catalogService:  catalogService,
		logger:          logger,
		validate:        validate,
		cfg:             cfg,
	}
}

// @Summary Get incident codes
// @Description Get incident type codes ordered by code ascending
// @Tags Codes
// @Produce json
// @Param code query string false "Comma-separated list of codes" example(110,120)
// @Success 200 {array} CodeResponse
// @Failure 400 {string} string "Invalid code parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /codes [get]
func (h *Handler) listCodes(c *gin.Context) {
	log := h.requestLogger(c, "listCodes")

	codes, err := filter.ParseOptionalIntList(c.Request.URL.Query(), "code")
	if err != nil {
		log.WithError(err).Warn("Invalid code parameter")
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.catalogService.ListCodes(c.Request.Context(), codes)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCodeResponses(result))
}

// @Summary Get neighborhoods
// @Description Get neighborhoods ordered by id ascending
// @Tags Neighborhoods
// @Produce json
// @Param id query string false "Comma-separated list of neighborhood ids" example(1,2)
// @Success 200 {array} NeighborhoodResponse
// @Failure 400 {string} string "Invalid id parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /neighborhoods [get]
func (h *Handler) listNeighborhoods(c *gin.Context) {
	log := h.requestLogger(c, "listNeighborhoods")

	ids, err := filter.ParseOptionalIntList(c.Request.URL.Query(), "id")
	if err != nil {
		log.WithError(err).Warn("Invalid id parameter")
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.catalogService.ListNeighborhoods(c.Request.Context(), ids)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNeighborhoodResponses(result))
}

// @Summary Get a list of incidents
// @Description Get incidents ordered by date and time descending, optionally filtered
// @Tags Incidents
// @Produce json
// @Param start_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param code query string false "Comma-separated list of codes"
// @Param grid query string false "Comma-separated list of police grids"
// @Param neighborhood query string false "Comma-separated list of neighborhood numbers"
// @Param limit query int false "Maximum number of incidents" default(1000)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid filter parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.requestLogger(c, "listIncidents")

	incidentFilter, err := filter.ParseIncidentFilter(c.Request.URL.Query())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), incidentFilter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Create a new incident
// @Description Create a new incident. Date and time are combined into one timestamp.
// @Tags Incidents
// @Accept json
// @Produce plain
// @Param incident body NewIncidentRequest true "Incident creation request"
// @Success 200 {string} string "success"
// @Failure 400 {object} map[string]string "Invalid request body or missing field"
// @Failure 409 {object} map[string]string "Incident with this case_number already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /new-incident [put]
func (h *Handler) createIncident(c *gin.Context) {
	var input NewIncidentRequest
	log := h.requestLogger(c, "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.normalize()
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	if err := h.incidentService.CreateIncident(c.Request.Context(), DTOToIncidentModel(input)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.String(http.StatusOK, "success")
}

// @Summary Remove an incident
// @Description Remove an incident by case number
// @Tags Incidents
// @Accept json
// @Produce plain
// @Param incident body RemoveIncidentRequest true "Incident removal request"
// @Success 200 {string} string "success"
// @Failure 400 {object} map[string]string "Invalid request body or missing field"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /remove-incident [delete]
func (h *Handler) removeIncident(c *gin.Context) {
	var input RemoveIncidentRequest
	log := h.requestLogger(c, "removeIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.normalize()
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	if err := h.incidentService.RemoveIncident(c.Request.Context(), input.CaseNumber); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.String(http.StatusOK, "success")
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) requestLogger(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}
