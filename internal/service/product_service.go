package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/minishop/internal/cache"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/models"
	"github.com/minishop/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	productNameMaxLength = 200
	priceScale           = 2
)

// productPriceLimit 价格上限（不含），对应 decimal(20,2) 的整数位
var productPriceLimit = decimal.New(1, 18)

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name  string
	Price models.Money
}

// ProductService 商品服务
type ProductService struct {
	repo  repository.ProductRepository
	cache *cache.Store
}

// NewProductService 创建商品服务，cache 为 nil 时直接读库
func NewProductService(repo repository.ProductRepository, cacheStore *cache.Store) *ProductService {
	return &ProductService{repo: repo, cache: cacheStore}
}

// AddProduct 创建商品
func (s *ProductService) AddProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if utf8.RuneCountInString(name) > productNameMaxLength {
		return nil, ErrProductNameTooLong
	}
	if err := validatePrice(input.Price.Decimal); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:  name,
		Price: models.NewMoneyFromDecimal(input.Price.Decimal),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	if err := s.cache.Del(ctx, cache.ProductListKey); err != nil {
		logger.Warnw("product_list_cache_invalidate_failed", "error", err)
	}
	return product, nil
}

// ListProducts 获取全部商品
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	hit, err := s.cache.GetJSON(ctx, cache.ProductListKey, &cached)
	if err != nil {
		logger.Warnw("product_list_cache_read_failed", "error", err)
	}
	if hit && cached != nil {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, cache.ProductListKey, products, cache.ProductListTTL); err != nil {
		logger.Warnw("product_list_cache_write_failed", "error", err)
	}
	return products, nil
}

// GetProduct 获取单个商品
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// validatePrice 在取整之前校验原始金额
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrProductPriceInvalid
	}
	if !price.Equal(price.Truncate(priceScale)) {
		return ErrProductPriceInvalid
	}
	if price.GreaterThanOrEqual(productPriceLimit) {
		return ErrProductPriceInvalid
	}
	return nil
}
