package handlers

import (
	"strconv"
	"time"

	"inklink_backend/internal/middleware"
	"inklink_backend/internal/models"
	"inklink_backend/internal/validator"
	"inklink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body and runs struct validation. It writes the error
// response itself; callers just return on false.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return validateStruct(c, v)
}

func bindQuery(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindQuery(v); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return validateStruct(c, v)
}

func validateStruct(c *gin.Context, v interface{}) bool {
	details, err := validator.Struct(v)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	if details != nil {
		apperrors.HandleError(c, apperrors.ValidationError(details))
		return false
	}
	return true
}

// currentUser pulls the authenticated identity off the context. Missing
// identity on a protected route is a programming error in route wiring, so
// it maps to 401 rather than panicking.
func currentUser(c *gin.Context) (string, models.UserRole, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", "", false
	}
	role, ok := middleware.CurrentRole(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", "", false
	}
	return userID, role, true
}

// timeQuery parses an optional RFC 3339 query parameter. A malformed value
// writes the error response and returns ok=false.
func timeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError(name+" must be RFC 3339"))
		return nil, false
	}
	return &t, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
