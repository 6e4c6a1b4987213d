package service

import (
	"github.com/foodie-app/internal/constants"
	"github.com/foodie-app/internal/models"

	"github.com/shopspring/decimal"
)

// PricingConfig 计价参数
type PricingConfig struct {
	DeliveryFee decimal.Decimal // 固定配送费
	TaxRate     decimal.Decimal // 税率（如 0.05）
}

// DefaultPricingConfig 默认计价参数（配送费 60，税率 5%）
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		DeliveryFee: decimal.NewFromInt(constants.DefaultDeliveryFee),
		TaxRate:     decimal.NewFromInt(constants.DefaultTaxRatePercent).Div(decimal.NewFromInt(100)),
	}
}

// NewPricingConfig 从配置值构建计价参数
func NewPricingConfig(deliveryFee, taxRatePercent int) PricingConfig {
	if deliveryFee < 0 {
		deliveryFee = constants.DefaultDeliveryFee
	}
	if taxRatePercent < 0 {
		taxRatePercent = constants.DefaultTaxRatePercent
	}
	return PricingConfig{
		DeliveryFee: decimal.NewFromInt(int64(deliveryFee)),
		TaxRate:     decimal.NewFromInt(int64(taxRatePercent)).Div(decimal.NewFromInt(100)),
	}
}

// Totals 购物车金额汇总
type Totals struct {
	TotalItems  int             // 商品总件数
	Subtotal    decimal.Decimal // 商品小计
	DeliveryFee decimal.Decimal // 配送费
	Tax         decimal.Decimal // 税费
	GrandTotal  decimal.Decimal // 应付总额
}

// ComputeTotals 纯函数计价：小计 = Σ(单价快照 × 数量)，配送费固定，
// 税费 = 小计 × 税率。中间结果不做舍入，只在序列化时取 2 位小数。
func ComputeTotals(lines []models.CartItem, cfg PricingConfig) Totals {
	subtotal := decimal.Zero
	totalItems := 0
	for _, line := range lines {
		lineTotal := line.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		totalItems += line.Quantity
	}
	tax := subtotal.Mul(cfg.TaxRate)
	return Totals{
		TotalItems:  totalItems,
		Subtotal:    subtotal,
		DeliveryFee: cfg.DeliveryFee,
		Tax:         tax,
		GrandTotal:  subtotal.Add(cfg.DeliveryFee).Add(tax),
	}
}
