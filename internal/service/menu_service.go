package service

import (
	"context"
	"fmt"
	"time"

	"github.com/foodie-app/internal/cache"
	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/models"
	"github.com/foodie-app/internal/repository"
)

const menuCacheTTL = 5 * time.Minute

// MenuService 菜单服务。菜单在进程启动时写入，此后只读，列表结果可缓存。
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService 创建菜单服务
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListItems 按条件获取菜单项
func (s *MenuService) ListItems(ctx context.Context, filter repository.MenuFilter) ([]models.MenuItem, error) {
	cacheKey := menuListCacheKey(filter)
	var cached []models.MenuItem
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		logger.Debugw("menu_cache_read_failed", "key", cacheKey, "error", err)
	} else if hit {
		return cached, nil
	}

	items, err := s.menuRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, cacheKey, items, menuCacheTTL); err != nil {
		logger.Debugw("menu_cache_write_failed", "key", cacheKey, "error", err)
	}
	return items, nil
}

// GetItem 获取单个菜单项
func (s *MenuService) GetItem(itemID uint) (*models.MenuItem, error) {
	if itemID == 0 {
		return nil, ErrItemNotFound
	}
	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func menuListCacheKey(filter repository.MenuFilter) string {
	featured := "any"
	if filter.Featured != nil {
		featured = fmt.Sprintf("%t", *filter.Featured)
	}
	available := "any"
	if filter.Available != nil {
		available = fmt.Sprintf("%t", *filter.Available)
	}
	category := filter.Category
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("menu:list:%s:%s:%s", category, featured, available)
}
