package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表，字段为结算时刻的购物车行深拷贝
type OrderItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                   // 主键
	OrderID     uint           `gorm:"index;not null" json:"order_id"`                         // 订单ID
	ItemID      uint           `gorm:"index;not null" json:"item_id"`                          // 菜品ID
	Name        string         `gorm:"not null" json:"name"`                                   // 菜品名称快照
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`    // 单价快照
	ImageURL    string         `gorm:"type:varchar(500)" json:"image"`                         // 图片快照
	Category    string         `gorm:"type:varchar(50)" json:"category"`                       // 分类快照
	Quantity    int            `gorm:"not null" json:"quantity"`                               // 数量
	TotalPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 行小计
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                             // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
