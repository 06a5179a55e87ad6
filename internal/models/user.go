package models

import "time"

// User 用户表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                  // 主键
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"` // 用户名（唯一）
	PasswordHash string    `gorm:"not null" json:"-"`                                     // 密码哈希（不返回给前端）
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`                                // 创建时间
	UpdatedAt    time.Time `json:"updatedAt"`                                             // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
