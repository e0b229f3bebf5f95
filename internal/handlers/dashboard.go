package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/service"
)

// DashboardHandler handles the joined home-screen payload
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build dashboard", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, summary)
}
