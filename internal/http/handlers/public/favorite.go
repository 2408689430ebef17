package public

import (
	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddFavorite handles POST /favorites/:productId.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := shared.ParseUintParam(c, "productId")
	if !ok {
		return
	}

	favorite, err := h.FavoriteService.Add(userID, productID)
	if err != nil {
		respondFavoriteError(c, err)
		return
	}
	response.Created(c, "product favorited", favorite)
}

// RemoveFavorite handles DELETE /favorites/:productId.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := shared.ParseUintParam(c, "productId")
	if !ok {
		return
	}

	if err := h.FavoriteService.Remove(userID, productID); err != nil {
		respondFavoriteError(c, err)
		return
	}
	response.Success(c, "favorite removed", nil)
}

// ListFavorites handles GET /favorites.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, limit := shared.ParsePagination(c)

	favorites, total, err := h.FavoriteService.List(userID, page, limit)
	if err != nil {
		respondFavoriteError(c, err)
		return
	}
	response.SuccessWithPage(c, "favorites fetched", favorites,
		response.NewPagination(page, limit, total))
}

// CheckFavorite handles GET /favorites/check/:productId.
func (h *Handler) CheckFavorite(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := shared.ParseUintParam(c, "productId")
	if !ok {
		return
	}

	favorited, err := h.FavoriteService.IsFavorited(userID, productID)
	if err != nil {
		respondFavoriteError(c, err)
		return
	}
	response.Success(c, "favorite status fetched", gin.H{"isFavorited": favorited})
}
