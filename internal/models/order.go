package models

import "time"

// Order 订单表（创建后不可变）
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                     // 主键
	OrderNo     string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"orderNo"`     // 订单编号
	UserID      uint      `gorm:"index;not null" json:"userId"`                             // 用户ID
	Status      string    `gorm:"type:varchar(20);not null" json:"status"`                  // 订单状态
	TotalAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"totalAmount"` // 结算金额
	ItemCount   int       `gorm:"not null;default:0" json:"itemCount"`                      // 结算时的购物车行数
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`                                   // 创建时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
