package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/apierror"
)

// currentUserID pulls the authenticated user from the context set by the
// auth middleware. Writes the 401 problem response itself when absent.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID.(string), true
}
