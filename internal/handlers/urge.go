package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/service"
)

// UrgeHandler handles urge-related HTTP requests
type UrgeHandler struct {
	urgeService service.UrgeService
}

// NewUrgeHandler creates a new urge handler
func NewUrgeHandler(urgeService service.UrgeService) *UrgeHandler {
	return &UrgeHandler{urgeService: urgeService}
}

// CreateUrge handles POST /api/v1/urges
func (h *UrgeHandler) CreateUrge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateUrgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "body", Message: err.Error(), Code: "invalid_body"},
		}))
		return
	}

	urge, err := h.urgeService.CreateUrge(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create urge", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, urge)
}

// GetUrges handles GET /api/v1/urges
func (h *UrgeHandler) GetUrges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	urges, err := h.urgeService.GetUserUrges(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list urges", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"urges": urges})
}

// GetTodayUrges handles GET /api/v1/urges/today
func (h *UrgeHandler) GetTodayUrges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	urges, err := h.urgeService.GetTodayUrges(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list today's urges", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"urges": urges})
}

// GetUrge handles GET /api/v1/urges/:id
func (h *UrgeHandler) GetUrge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	urgeID := c.Param("id")
	if err := service.ValidateRecordID(urgeID); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), "id", urgeID))
		return
	}

	urge, err := h.urgeService.GetUrge(c.Request.Context(), userID, urgeID)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "urge", urgeID))
		return
	}

	c.JSON(http.StatusOK, urge)
}

// ResolveUrge handles POST /api/v1/urges/:id/resolve
func (h *UrgeHandler) ResolveUrge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	urgeID := c.Param("id")
	if err := service.ValidateRecordID(urgeID); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), "id", urgeID))
		return
	}

	var req models.ResolveUrgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "outcome", Message: "must be resisted or indulged", Code: "invalid_outcome"},
		}))
		return
	}

	urge, err := h.urgeService.ResolveUrge(c.Request.Context(), userID, urgeID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUrgeResolved) {
			apierror.WriteProblem(c, apierror.NewConflictError(apierror.GetRequestID(c), "urge outcome is already recorded"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to resolve urge", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, urge)
}
