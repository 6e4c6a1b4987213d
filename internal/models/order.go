package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表。下单时冻结购物车与价格快照，订单行不共享菜单的可变状态。
// 订单只追加不删除，取消是状态变更而非删除。
type Order struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                                 // 主键
	OrderNo             string         `gorm:"uniqueIndex;not null" json:"order_no"`                 // 订单编号
	UserID              string         `gorm:"type:varchar(64);index;not null" json:"user_id"`       // 用户标识
	DeliveryAddress     string         `gorm:"type:text;not null" json:"delivery_address"`           // 配送地址
	Subtotal            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`      // 商品小计
	DeliveryFee         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_fee"`  // 配送费
	Tax                 Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`           // 税费
	TotalAmount         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`         // 应付总额
	Status              string         `gorm:"index;not null" json:"status"`                         // 存储状态（confirmed / cancelled）
	EstimatedDeliveryAt *time.Time     `json:"estimated_delivery"`                                   // 预计送达时间
	CancelledAt         *time.Time     `gorm:"index" json:"cancelled_at,omitempty"`                  // 取消时间
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`                              // 创建时间
	UpdatedAt           time.Time      `gorm:"index" json:"updated_at"`                              // 更新时间
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                       // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
