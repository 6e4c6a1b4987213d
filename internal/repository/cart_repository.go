package repository

import (
	"errors"
	"time"

	"github.com/foodie-app/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID string) ([]models.CartItem, error)
	GetByUserAndItem(userID string, itemID uint) (*models.CartItem, error)
	Insert(item *models.CartItem) error
	AddQuantity(userID string, itemID uint, delta int) (bool, error)
	SetQuantity(userID string, itemID uint, quantity int) (bool, error)
	DeleteByUserAndItem(userID string, itemID uint) error
	DeleteByIDs(ids []uint) error
	ClearByUser(userID string) error
	WithTx(tx *gorm.DB) *GormCartRepository
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
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车项，按加入顺序返回
func (r *GormCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndItem 查询单个购物车项
func (r *GormCartRepository) GetByUserAndItem(userID string, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert 新增购物车项
func (r *GormCartRepository) Insert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// AddQuantity 原子累加已有行的数量。并发的 AddQuantity 彼此不会丢失更新。
// 返回是否命中已有行。
func (r *GormCartRepository) AddQuantity(userID string, itemID uint, delta int) (bool, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SetQuantity 覆盖已有行的数量，返回是否命中已有行
func (r *GormCartRepository) SetQuantity(userID string, itemID uint, quantity int) (bool, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteByUserAndItem 删除购物车项。购物车行不做软删除，物理删除后
// 同一菜品可以重新加入而不触碰 user_id + item_id 唯一索引。
func (r *GormCartRepository) DeleteByUserAndItem(userID string, itemID uint) error {
	return r.db.Where("user_id = ? AND item_id = ?", userID, itemID).Delete(&models.CartItem{}).Error
}

// DeleteByIDs 按主键删除购物车行。结算时只删除快照里的行，
// 快照之后并发加入的行不受影响。
func (r *GormCartRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&models.CartItem{}).Error
}

// ClearByUser 清空购物车
func (r *GormCartRepository) ClearByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
