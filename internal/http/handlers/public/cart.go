package public

import (
	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/http/response"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCart handles GET /cart, creating the cart on first access.
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, "cart fetched", cart)
}

// CartCount handles GET /cart/count.
func (h *Handler) CartCount(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	count, err := h.CartService.Count(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, "cart count fetched", gin.H{"count": count})
}

type addCartItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Colour    string `json:"colour"`
	Size      string `json:"size"`
}

// AddCartItem handles POST /cart/items. Adding an existing
// (product, colour, size) variant merges quantities.
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.CartService.AddItem(userID, service.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Colour:    req.Colour,
		Size:      req.Size,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, "item added to cart", cart)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateCartItem handles PUT /cart/items/:id.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "quantity is required")
		return
	}

	cart, err := h.CartService.UpdateItem(userID, itemID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, "cart item updated", cart)
}

// RemoveCartItem handles DELETE /cart/items/:id.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}

	cart, err := h.CartService.RemoveItem(userID, itemID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, "cart item removed", cart)
}

// ClearCart handles DELETE /cart.
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Clear(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, "cart cleared", cart)
}
