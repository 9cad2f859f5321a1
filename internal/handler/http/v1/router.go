package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestIDMiddleware())

	// Маршрут приёма отчётов; проверка подписи активна только
	// при заданном секрете
	reports := api.Group("/reports")
	reports.Use(SignatureAuthMiddleware(h.cfg, h.logger))
	reports.POST("", h.submitReport)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
