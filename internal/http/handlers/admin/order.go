package admin

import (
	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListOrders handles GET /admin/orders with optional status filter.
func (h *Handler) ListOrders(c *gin.Context) {
	page, limit := shared.ParsePagination(c)

	orders, total, err := h.OrderService.ListAll(c.Query("status"), page, limit)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.SuccessWithPage(c, "orders fetched", orders,
		response.NewPagination(page, limit, total))
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PATCH /admin/orders/:id/status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	order, err := h.OrderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, "order status updated", order)
}
