package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/internal/service"
)

// JournalHandler handles journal-related HTTP requests
type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// GetEntries handles GET /api/v1/journal
func (h *JournalHandler) GetEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.journalService.GetUserEntries(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list journal entries", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetEntry handles GET /api/v1/journal/:date
func (h *JournalHandler) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := c.Param("date")
	entry, err := h.journalService.GetEntry(c.Request.Context(), userID, date)
	if err != nil {
		if strings.Contains(err.Error(), "invalid date") {
			apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
				"date must be formatted YYYY-MM-DD", "Invalid date"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to get journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	if entry == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "journal entry", date))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpsertEntry handles PUT /api/v1/journal/:date
func (h *JournalHandler) UpsertEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpsertJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "mood", Message: "must be between 1 and 5", Code: "out_of_range"},
		}))
		return
	}

	entry, err := h.journalService.UpsertEntry(c.Request.Context(), userID, c.Param("date"), &req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid date") {
			apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
				"date must be formatted YYYY-MM-DD", "Invalid date"))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to upsert journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, entry)
}
