package shared

import (
	"errors"
	"net/http"

	"github.com/velora-shop/velora/internal/http/response"
	"github.com/velora-shop/velora/internal/logger"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
)

// MappedError maps one service sentinel onto an HTTP status and message.
type MappedError struct {
	Target  error
	Status  int
	Message string
}

// RespondMapped walks the rules for a matching sentinel. Field-level
// validation errors are handled uniformly before the rules; anything
// unmatched is logged and rendered as an internal error with a sanitized
// message.
func RespondMapped(c *gin.Context, err error, rules []MappedError, fallbackMessage string) {
	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		response.FailWithDetail(c, http.StatusBadRequest, "validation failed", fieldErrs)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			response.Fail(c, rule.Status, rule.Message)
			return
		}
	}
	logger.Errorw("request_failed",
		"path", c.FullPath(),
		"method", c.Request.Method,
		"error", err,
	)
	response.Internal(c, fallbackMessage)
}

// ConcatMappedErrors joins rule groups.
func ConcatMappedErrors(groups ...[]MappedError) []MappedError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]MappedError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}
