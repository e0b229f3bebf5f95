package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/service"
)

// InsightsHandler handles insight-related HTTP requests
type InsightsHandler struct {
	insightService service.InsightService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightService service.InsightService) *InsightsHandler {
	return &InsightsHandler{insightService: insightService}
}

// GetInsights handles GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	insights, err := h.insightService.GetInsights(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to derive insights", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights":        insights,
		"data_sufficient": len(insights) > 0,
		"computed_at":     time.Now(),
	})
}
