package repository

import (
	"context"

	"github.com/minishop/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	ListByUserForUpdate(ctx context.Context, userID uint) ([]models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	DeleteByIDs(ctx context.Context, userID uint, ids []uint) (int64, error)
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车项
func (r *GormCartRepository) ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByUserForUpdate 在事务中读取并锁定用户购物车项
func (r *GormCartRepository) ListByUserForUpdate(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	query := lockForUpdate(r.db.WithContext(ctx))
	if err := query.Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create 新增购物车项
func (r *GormCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteByIDs 删除用户的指定购物车项，返回实际删除行数
func (r *GormCartRepository) DeleteByIDs(ctx context.Context, userID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, ids).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
