package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/service"
)

// AchievementsHandler handles achievement-related HTTP requests
type AchievementsHandler struct {
	achievementService service.AchievementService
}

// NewAchievementsHandler creates a new achievements handler
func NewAchievementsHandler(achievementService service.AchievementService) *AchievementsHandler {
	return &AchievementsHandler{achievementService: achievementService}
}

// GetAchievements handles GET /api/v1/achievements
func (h *AchievementsHandler) GetAchievements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	achievements, err := h.achievementService.GetAchievements(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to derive achievements", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// GetMilestone handles GET /api/v1/achievements/milestone
func (h *AchievementsHandler) GetMilestone(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	message, err := h.achievementService.GetMilestone(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to select milestone message", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
