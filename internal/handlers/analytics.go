package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/service"
)

// AnalyticsHandler handles analytics-related HTTP requests
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetUrgeAnalytics handles GET /api/v1/analytics/urges?range=week|month|quarter|year
func (h *AnalyticsHandler) GetUrgeAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rangeStr := c.DefaultQuery("range", "week")
	if !models.ValidTimeRange(rangeStr) {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"range must be one of week, month, quarter, year", "Invalid time range"))
		return
	}

	analytics, err := h.analyticsService.GetUrgeAnalytics(c.Request.Context(), userID, models.TimeRange(rangeStr))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build urge analytics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GetMoodAnalytics handles GET /api/v1/analytics/mood?range=week|month|quarter|year
func (h *AnalyticsHandler) GetMoodAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rangeStr := c.DefaultQuery("range", "week")
	if !models.ValidTimeRange(rangeStr) {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"range must be one of week, month, quarter, year", "Invalid time range"))
		return
	}

	analytics, err := h.analyticsService.GetMoodAnalytics(c.Request.Context(), userID, models.TimeRange(rangeStr))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build mood analytics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GetMoodWeek handles GET /api/v1/analytics/mood-week
func (h *AnalyticsHandler) GetMoodWeek(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	buckets, err := h.analyticsService.GetMoodWeek(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build mood week", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}

// GetSummary handles GET /api/v1/analytics/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	urgeStats, journalStats, err := h.analyticsService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build summary", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"urges":   urgeStats,
		"journal": journalStats,
	})
}
