package public

import (
	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/http/response"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// Checkout handles POST /orders/checkout: the cart becomes a pending
// order and the caller is handed the gateway payment URL.
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.OrderService.Checkout(c.Request.Context(), userID, service.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Created(c, "order created", result)
}

// PaymentSuccess handles GET /orders/success?session_id=. The gateway is
// re-queried for the session state; the redirect itself is never trusted.
func (h *Handler) PaymentSuccess(c *gin.Context) {
	order, err := h.OrderService.ConfirmPayment(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, "payment confirmed", order)
}

// ListMyOrders handles GET /orders.
func (h *Handler) ListMyOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, limit := shared.ParsePagination(c)

	orders, total, err := h.OrderService.ListMine(userID, page, limit)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithPage(c, "orders fetched", orders,
		response.NewPagination(page, limit, total))
}

// GetMyOrder handles GET /orders/:id, scoped to the owner.
func (h *Handler) GetMyOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetMine(userID, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, "order fetched", order)
}
