package public

import (
	"github.com/minishop/internal/http/response"
	"github.com/minishop/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	item, err := h.CartService.AddItem(c.Request.Context(), service.AddCartItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(c, err, "failed to add cart item")
		return
	}
	response.Success(c, item)
}

// GetCart 获取用户购物车
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := parsePathUint(c, "userId")
	if !ok {
		return
	}
	items, err := h.CartService.ListItems(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "failed to list cart items")
		return
	}
	response.Success(c, items)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := parsePathUint(c, "userId")
	if !ok {
		return
	}
	itemID, ok := parsePathUint(c, "itemId")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		respondServiceError(c, err, "failed to remove cart item")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
