package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/anythingai/SF-Garbage-Reporter/internal/config"
	"github.com/anythingai/SF-Garbage-Reporter/internal/service"
	"github.com/anythingai/SF-Garbage-Reporter/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Submit a garbage report
// @Description Validate a geolocated garbage report, suppress duplicates within the trailing window and forward it to the city operations inbox by email.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body SubmitReportRequest true "Garbage report submission"
// @Success 200 {object} SubmitSuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid payload or location outside the service area"
// @Failure 500 {object} ErrorResponse "Dispatch or configuration failure"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	start := time.Now()
	rid := requestID(c)
	log := logger.WithRequestID(h.logger, rid).WithField("method", "submitReport")
	log.Info("Report submission started")

	var input SubmitReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: statusError, Code: CodeBadRequest, Message: msgInvalidRequest})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		// Наружу не уходит информация о том, какое именно поле не прошло
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: statusError, Code: CodeBadRequest, Message: msgInvalidRequest})
		return
	}

	report, err := DTOToReportModel(input, time.Now())
	if err != nil {
		log.WithError(err).Warn("Failed to map submission payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: statusError, Code: CodeBadRequest, Message: msgInvalidRequest})
		return
	}

	result, err := h.reportService.Submit(c.Request.Context(), report, rid)
	if err != nil {
		if errors.Is(err, service.ErrOutOfBounds) {
			log.WithField("duration_ms", time.Since(start).Milliseconds()).Warn("Report rejected: out of bounds")
			c.JSON(http.StatusBadRequest, ErrorResponse{Status: statusError, Code: CodeOutOfBounds, Message: msgOutOfBounds})
			return
		}
		log.WithError(err).WithField("duration_ms", time.Since(start).Milliseconds()).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Status: statusError, Code: CodeServerError, Message: msgServerError})
		return
	}

	log.WithFields(logrus.Fields{
		"reference":   result.Reference,
		"duplicate":   result.Duplicate,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Report submission completed")
	c.JSON(http.StatusOK, SubmitSuccessResponse{Status: statusSuccess, Reference: result.Reference})
}

// @Summary Get application health status
// @Description Get health status of the application with a feature flag summary
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		Service:      "sf-garbage-reporter",
		GeoFence:     h.cfg.GeoFenceEnabled,
		DedupBackend: h.cfg.DedupBackend,
	})
}
