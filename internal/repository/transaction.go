package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxFunc 事务回调，tx 为绑定了上下文的事务句柄
type TxFunc func(tx *gorm.DB) error

// Transactor 事务执行器
type Transactor interface {
	Transaction(ctx context.Context, fn TxFunc) error
}

// GormTransactor GORM 实现
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor 创建事务执行器
func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transaction 在单个事务中执行 fn，fn 返回错误或 panic 时整体回滚
func (t *GormTransactor) Transaction(ctx context.Context, fn TxFunc) error {
	if fn == nil {
		return nil
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}
