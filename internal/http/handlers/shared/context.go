// Package shared holds helpers used by both public and admin handlers.
package shared

import (
	"strconv"

	"github.com/velora-shop/velora/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUint reads a uint from the request context, responding with
// the appropriate error when it is missing or malformed.
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, "authentication required")
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			response.BadRequest(c, "invalid identity")
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			response.BadRequest(c, "invalid identity")
			return 0, false
		}
		return uint(v), true
	default:
		response.Internal(c, "invalid identity type")
		return 0, false
	}
}

// ParseUintParam reads a numeric path parameter, responding 400 on junk.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}
