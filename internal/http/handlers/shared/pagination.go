package shared

import (
	"strconv"

	"github.com/velora-shop/velora/internal/constants"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads page/limit query parameters with the public
// defaults and size cap.
func ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return page, limit
}
