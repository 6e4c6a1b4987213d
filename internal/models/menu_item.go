package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem 菜单项（菜品表）
type MenuItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                  // 主键
	Name        string         `gorm:"not null;index" json:"name"`                            // 菜品名称
	Category    string         `gorm:"type:varchar(50);not null;index" json:"category"`       // 分类
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`    // 价格
	ImageURL    string         `gorm:"type:varchar(500)" json:"image"`                        // 图片地址
	Description string         `gorm:"type:text" json:"description"`                          // 描述
	Rating      float64        `gorm:"not null;default:0" json:"rating"`                      // 评分
	CookTime    string         `gorm:"type:varchar(20)" json:"cook_time"`                     // 预计制作时长
	Tags        StringArray    `gorm:"type:json" json:"tags"`                                 // 标签数组
	Featured    bool           `gorm:"default:false;index" json:"featured"`                   // 是否推荐
	Available   bool           `gorm:"default:true;index" json:"available"`                   // 是否可售
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                     // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                            // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                        // 软删除时间
}

// TableName 指定表名
func (MenuItem) TableName() string {
	return "menu_items"
}
