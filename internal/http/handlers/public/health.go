package public

import (
	"github.com/velora-shop/velora/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, "ok", gin.H{"status": "up"})
}

// Ready handles GET /ready, checking database connectivity.
func (h *Handler) Ready(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		response.Internal(c, "database unavailable")
		return
	}
	response.Success(c, "ready", gin.H{"status": "ready"})
}
