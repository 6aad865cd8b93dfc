package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Справочники
	api.GET("/codes", h.listCodes)
	api.GET("/neighborhoods", h.listNeighborhoods)

	// Инциденты
	api.GET("/incidents", h.listIncidents)
	api.PUT("/new-incident", h.createIncident)
	api.DELETE("/remove-incident", h.removeIncident)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
