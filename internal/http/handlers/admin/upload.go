package admin

import (
	"github.com/velora-shop/velora/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadImage handles POST /admin/upload. Accepts a single multipart
// file under "image" and returns the hosted URL.
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	url, err := h.UploadService.UploadImage(c.Request.Context(), file)
	if err != nil {
		respondProductAdminError(c, err)
		return
	}
	response.Created(c, "image uploaded", gin.H{"url": url})
}
