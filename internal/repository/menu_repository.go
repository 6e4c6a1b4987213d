package repository

import (
	"errors"

	"github.com/foodie-app/internal/models"

	"gorm.io/gorm"
)

// MenuFilter 菜单查询条件
type MenuFilter struct {
	Category  string
	Featured  *bool
	Available *bool
}

// MenuRepository 菜单数据访问接口
type MenuRepository interface {
	List(filter MenuFilter) ([]models.MenuItem, error)
	GetByID(id uint) (*models.MenuItem, error)
}

// GormMenuRepository GORM 实现
type GormMenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository 创建菜单仓库
func NewMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// List 按条件查询菜单项
func (r *GormMenuRepository) List(filter MenuFilter) ([]models.MenuItem, error) {
	query := r.db.Model(&models.MenuItem{})
	if filter.Category != "" && filter.Category != "All" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	var items []models.MenuItem
	if err := query.Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 按 ID 查询菜单项
func (r *GormMenuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
