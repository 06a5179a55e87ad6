package public

import (
	"github.com/minishop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Checkout 结算购物车生成订单
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := parseQueryUint(c, "userId")
	if !ok {
		return
	}
	order, err := h.OrderService.Checkout(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "checkout failed")
		return
	}
	response.Success(c, order)
}

// ListOrders 用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := parseQueryUint(c, "userId")
	if !ok {
		return
	}
	orders, err := h.OrderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "failed to list orders")
		return
	}
	response.Success(c, orders)
}
