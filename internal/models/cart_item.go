package models

import "time"

// CartItem 购物车项
// 结算时按行物理删除，不做软删除
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	UserID    uint      `gorm:"not null;index" json:"userId"`    // 用户ID
	ProductID uint      `gorm:"not null;index" json:"productId"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`        // 数量
	CreatedAt time.Time `json:"createdAt"`                       // 创建时间
	UpdatedAt time.Time `json:"updatedAt"`                       // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
