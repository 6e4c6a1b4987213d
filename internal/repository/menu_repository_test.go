package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/foodie-app/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openMenuTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:menu_repository_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedMenu(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []models.MenuItem{
		{Name: "Galouti Kebab", Category: "Appetizers", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(280)), Available: true, SortOrder: 2},
		{Name: "Lucknowi Biryani", Category: "Main Course", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(320)), Featured: true, Available: true, SortOrder: 1},
		{Name: "Masala Chai", Category: "Beverages", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(30)), Available: false, SortOrder: 3},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("seed menu failed: %v", err)
	}
}

func TestMenuListOrdersBySortOrder(t *testing.T) {
	db := openMenuTestDB(t)
	seedMenu(t, db)
	repo := NewMenuRepository(db)

	items, err := repo.List(MenuFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Name != "Lucknowi Biryani" || items[1].Name != "Galouti Kebab" {
		t.Fatalf("unexpected order: %s, %s", items[0].Name, items[1].Name)
	}
}

func TestMenuListFilters(t *testing.T) {
	db := openMenuTestDB(t)
	seedMenu(t, db)
	repo := NewMenuRepository(db)

	items, err := repo.List(MenuFilter{Category: "Appetizers"})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Galouti Kebab" {
		t.Fatalf("unexpected category result: %+v", items)
	}

	// "All" 等价于不过滤分类
	items, err = repo.List(MenuFilter{Category: "All"})
	if err != nil {
		t.Fatalf("list All failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items for All, got %d", len(items))
	}

	featured := true
	items, err = repo.List(MenuFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("list featured failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Lucknowi Biryani" {
		t.Fatalf("unexpected featured result: %+v", items)
	}

	available := true
	items, err = repo.List(MenuFilter{Available: &available})
	if err != nil {
		t.Fatalf("list available failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 available items, got %d", len(items))
	}
}

func TestMenuGetByIDMissingReturnsNil(t *testing.T) {
	db := openMenuTestDB(t)
	repo := NewMenuRepository(db)

	item, err := repo.GetByID(42)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil for missing item, got %+v", item)
	}
}
