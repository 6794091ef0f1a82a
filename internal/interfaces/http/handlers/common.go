package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techile/fieldportal/internal/shared/authorization"
	"github.com/techile/fieldportal/internal/shared/constants"
	"github.com/techile/fieldportal/internal/shared/errors"
)

// currentUserID returns the authenticated user's ID from the request context.
func currentUserID(c *gin.Context) (uint, error) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("User not authenticated")
	}
	id, ok := raw.(uint)
	if !ok || id == 0 {
		return 0, errors.NewInternalError("Internal error")
	}
	return id, nil
}

// currentUserRole returns the authenticated user's role from the request context.
func currentUserRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}

// parseQueryUint returns the query parameter as a uint, zero when absent or
// malformed.
func parseQueryUint(c *gin.Context, key string) uint {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
