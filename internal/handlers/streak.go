package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/service"
)

// StreakHandler handles streak-related HTTP requests
type StreakHandler struct {
	streakService service.StreakService
}

// NewStreakHandler creates a new streak handler
func NewStreakHandler(streakService service.StreakService) *StreakHandler {
	return &StreakHandler{streakService: streakService}
}

// GetStreak handles GET /api/v1/streak
func (h *StreakHandler) GetStreak(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	streak, err := h.streakService.GetStreak(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get streak", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, streak)
}

// CheckIn handles POST /api/v1/streak/checkin
func (h *StreakHandler) CheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	streak, err := h.streakService.CheckIn(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to check in", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, streak)
}

// Relapse handles POST /api/v1/streak/relapse
func (h *StreakHandler) Relapse(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	streak, err := h.streakService.Relapse(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to record relapse", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, streak)
}
