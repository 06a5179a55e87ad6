package service

import (
	"context"

	"github.com/minishop/internal/models"
	"github.com/minishop/internal/repository"
)

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem 新增购物车行，同一商品多次加入会产生多行
func (s *CartService) AddItem(ctx context.Context, input AddCartItemInput) (*models.CartItem, error) {
	if input.UserID == 0 {
		return nil, ErrUserIDInvalid
	}
	if input.Quantity <= 0 {
		return nil, ErrCartQuantityInvalid
	}
	if input.ProductID == 0 {
		return nil, ErrCartProductInvalid
	}
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrCartProductInvalid
	}

	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems 获取用户购物车
func (s *CartService) ListItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUserIDInvalid
	}
	return s.cartRepo.ListByUser(ctx, userID)
}

// RemoveItem 删除用户的单个购物车行
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if userID == 0 {
		return ErrUserIDInvalid
	}
	if itemID == 0 {
		return ErrCartItemNotFound
	}
	affected, err := s.cartRepo.DeleteByIDs(ctx, userID, []uint{itemID})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
