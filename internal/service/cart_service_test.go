package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/foodie-app/internal/models"
	"github.com/foodie-app/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.MenuItem{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price int64, available bool) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Category:    "Main Course",
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Available:   available,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create menu item failed: %v", err)
	}
	return &item
}

func newCartTestService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := openCartTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	return NewCartService(cartRepo, menuRepo, DefaultPricingConfig()), db
}

func TestGetCartEmptyMarshalsAsArray(t *testing.T) {
	svc, _ := newCartTestService(t)

	view, err := svc.GetCart("u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if view.Lines == nil {
		t.Fatal("empty cart lines should be a non-nil slice")
	}

	raw, err := json.Marshal(view.Lines)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("empty cart should marshal as [], got %s", raw)
	}
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	svc, db := newCartTestService(t)
	item := seedMenuItem(t, db, "Lucknowi Biryani", 320, true)

	if err := svc.AddItem("u1", item.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem("u1", item.ID, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	view, err := svc.GetCart("u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", view.Lines[0].Quantity)
	}
}

func TestAddItemSnapshotsMenuData(t *testing.T) {
	svc, db := newCartTestService(t)
	item := seedMenuItem(t, db, "Galouti Kebab", 280, true)

	if err := svc.AddItem("u1", item.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// 菜单涨价不影响已有购物车行的快照价格
	if err := db.Model(&models.MenuItem{}).Where("id = ?", item.ID).
		Update("price_amount", models.NewMoneyFromDecimal(decimal.NewFromInt(999))).Error; err != nil {
		t.Fatalf("update menu price failed: %v", err)
	}

	view, err := svc.GetCart("u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if !view.Lines[0].PriceAmount.Decimal.Equal(decimal.NewFromInt(280)) {
		t.Fatalf("expected snapshot price 280, got %s", view.Lines[0].PriceAmount.Decimal.String())
	}
	if !view.Totals.Subtotal.Equal(decimal.NewFromInt(280)) {
		t.Fatalf("expected subtotal 280, got %s", view.Totals.Subtotal.String())
	}
}

func TestAddItemValidation(t *testing.T) {
	svc, db := newCartTestService(t)
	available := seedMenuItem(t, db, "Masala Chai", 30, true)
	unavailable := seedMenuItem(t, db, "Tunday Kebab", 250, false)

	if err := svc.AddItem("u1", available.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := svc.AddItem("u1", available.ID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := svc.AddItem("u1", 9999, 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if err := svc.AddItem("u1", unavailable.ID, 1); !errors.Is(err, ErrItemNotAvailable) {
		t.Fatalf("expected ErrItemNotAvailable, got %v", err)
	}
	if err := svc.AddItem("", available.ID, 1); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}

func TestSetQuantityOverwrites(t *testing.T) {
	svc, db := newCartTestService(t)
	item := seedMenuItem(t, db, "Paneer Butter Masala", 280, true)

	if err := svc.AddItem("u1", item.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.SetQuantity("u1", item.ID, 7); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	view, err := svc.GetCart("u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if view.Lines[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", view.Lines[0].Quantity)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	svc, db := newCartTestService(t)
	item := seedMenuItem(t, db, "Paneer Butter Masala", 280, true)

	if err := svc.AddItem("u1", item.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.SetQuantity("u1", item.ID, 0); err != nil {
		t.Fatalf("set quantity to 0 failed: %v", err)
	}

	view, err := svc.GetCart("u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(view.Lines))
	}
}

func TestSetQuantityMissingLineFails(t *testing.T) {
	svc, db := newCartTestService(t)
	item := seedMenuItem(t, db, "Masala Chai", 30, true)

	if err := svc.SetQuantity("u1", item.ID, 3); !errors.Is(err, ErrItemNotInCart) {
		t.Fatalf("expected ErrItemNotInCart, got %v", err)
	}
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	svc, _ := newCartTestService(t)

	if err := svc.RemoveItem("u1", 42); err != nil {
		t.Fatalf("remove of absent line should succeed, got %v", err)
	}
}

func TestRemoveThenReAddItem(t *testing.T) {
	svc, db := newCartTestService(t)
	item := seedMenuItem(t, db, "Galouti Kebab", 280, true)

	if err := svc.AddItem("u1", item.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveItem("u1", item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.AddItem("u1", item.ID, 2); err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}

	view, err := svc.GetCart("u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart state: %+v", view.Lines)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	svc, db := newCartTestService(t)
	item := seedMenuItem(t, db, "Lucknowi Biryani", 320, true)

	if err := svc.AddItem("u1", item.ID, 1); err != nil {
		t.Fatalf("add for u1 failed: %v", err)
	}
	if err := svc.AddItem("u2", item.ID, 4); err != nil {
		t.Fatalf("add for u2 failed: %v", err)
	}
	if err := svc.Clear("u1"); err != nil {
		t.Fatalf("clear u1 failed: %v", err)
	}

	view, err := svc.GetCart("u2")
	if err != nil {
		t.Fatalf("get cart for u2 failed: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 4 {
		t.Fatalf("u2 cart should be untouched, got %+v", view.Lines)
	}
}
