package service

import (
	"testing"

	"github.com/foodie-app/internal/models"

	"github.com/shopspring/decimal"
)

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, DefaultPricingConfig())
	if totals.TotalItems != 0 {
		t.Fatalf("expected 0 items, got %d", totals.TotalItems)
	}
	if !totals.Subtotal.Equal(decimal.Zero) {
		t.Fatalf("expected zero subtotal, got %s", totals.Subtotal.String())
	}
	if !totals.Tax.Equal(decimal.Zero) {
		t.Fatalf("expected zero tax, got %s", totals.Tax.String())
	}
	if !totals.GrandTotal.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected grand total 60, got %s", totals.GrandTotal.String())
	}
}

func TestComputeTotals(t *testing.T) {
	lines := []models.CartItem{
		{PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(100)), Quantity: 2},
		{PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(50)), Quantity: 1},
	}
	totals := ComputeTotals(lines, DefaultPricingConfig())
	if totals.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", totals.TotalItems)
	}
	if !totals.Subtotal.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected subtotal 250, got %s", totals.Subtotal.String())
	}
	if !totals.DeliveryFee.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected delivery fee 60, got %s", totals.DeliveryFee.String())
	}
	if !totals.Tax.Equal(decimal.NewFromFloat(12.5)) {
		t.Fatalf("expected tax 12.5, got %s", totals.Tax.String())
	}
	if !totals.GrandTotal.Equal(decimal.NewFromFloat(322.5)) {
		t.Fatalf("expected grand total 322.5, got %s", totals.GrandTotal.String())
	}
}

func TestComputeTotalsKeepsPrecision(t *testing.T) {
	// 小数单价不应在中间步骤被舍入
	lines := []models.CartItem{
		{PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(33.33)), Quantity: 3},
	}
	totals := ComputeTotals(lines, DefaultPricingConfig())
	if !totals.Subtotal.Equal(decimal.NewFromFloat(99.99)) {
		t.Fatalf("expected subtotal 99.99, got %s", totals.Subtotal.String())
	}
	expectedTax := decimal.NewFromFloat(4.9995)
	if !totals.Tax.Equal(expectedTax) {
		t.Fatalf("expected tax 4.9995, got %s", totals.Tax.String())
	}
	if !totals.GrandTotal.Equal(decimal.NewFromFloat(164.9895)) {
		t.Fatalf("expected grand total 164.9895, got %s", totals.GrandTotal.String())
	}
}

func TestNewPricingConfigRejectsNegatives(t *testing.T) {
	cfg := NewPricingConfig(-1, -1)
	if !cfg.DeliveryFee.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected fallback delivery fee 60, got %s", cfg.DeliveryFee.String())
	}
	if !cfg.TaxRate.Equal(decimal.NewFromFloat(0.05)) {
		t.Fatalf("expected fallback tax rate 0.05, got %s", cfg.TaxRate.String())
	}
}
