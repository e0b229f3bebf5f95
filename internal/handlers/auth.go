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

// retryAfterSeconds is the Retry-After hint sent with 503 responses
const retryAfterSeconds = 30

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "email", Message: "valid email and password are required", Code: "invalid_credentials_format"},
		}))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAuthUnavailable) {
			logger.Ctx(c.Request.Context()).Error("auth provider unreachable", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewStoreUnavailableError(apierror.GetRequestID(c), retryAfterSeconds))
			return
		}
		logger.Ctx(c.Request.Context()).Warn("login failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "password", Message: "email must be valid and password at least 6 characters", Code: "invalid_signup"},
		}))
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAuthUnavailable) {
			logger.Ctx(c.Request.Context()).Error("auth provider unreachable", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewStoreUnavailableError(apierror.GetRequestID(c), retryAfterSeconds))
			return
		}
		logger.Ctx(c.Request.Context()).Warn("signup failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"signup rejected by auth provider", "Could not create the account"))
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get profile", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PATCH /api/v1/auth/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"malformed profile patch", "Invalid profile update"))
		return
	}

	profile, err := h.authService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to update profile", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, profile)
}
