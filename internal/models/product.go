package models

import "time"

// Product 商品表
type Product struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`             // 商品名称
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 当前价格
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                             // 创建时间
	UpdatedAt time.Time `json:"updatedAt"`                                          // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
