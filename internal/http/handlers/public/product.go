package public

import (
	"github.com/minishop/internal/http/response"
	"github.com/minishop/internal/models"
	"github.com/minishop/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest 创建商品请求，price 接受字符串或数字
type CreateProductRequest struct {
	Name  string        `json:"name"`
	Price *models.Money `json:"price"`
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductService.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "failed to list products")
		return
	}
	response.Success(c, products)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parsePathUint(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "failed to fetch product")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Price == nil {
		respondBadRequest(c, "price is required")
		return
	}

	product, err := h.ProductService.AddProduct(c.Request.Context(), service.CreateProductInput{
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create product")
		return
	}
	response.Success(c, product)
}
