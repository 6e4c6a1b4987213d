package models

import (
	"time"
)

// CartItem 购物车项。Name/PriceAmount 等字段是加入购物车时的菜品快照，
// 菜单后续变动不会影响已有购物车行的展示。
type CartItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                                    // 主键
	UserID      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_user_item" json:"user_id"` // 用户标识
	ItemID      uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"item_id"`                  // 菜品ID
	Quantity    int       `gorm:"not null" json:"quantity"`                                                // 数量（始终 >= 1）
	Name        string    `gorm:"not null" json:"name"`                                                    // 菜品名称快照
	PriceAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                      // 单价快照
	ImageURL    string    `gorm:"type:varchar(500)" json:"image"`                                          // 图片快照
	Category    string    `gorm:"type:varchar(50)" json:"category"`                                        // 分类快照
	CreatedAt   time.Time `gorm:"index" json:"added_at"`                                                   // 加入时间
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`                                                 // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
