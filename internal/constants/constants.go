package constants

// 订单状态常量。confirmed/preparing/out_for_delivery/delivered 由下单时间
// 推导得出，cancelled 是唯一持久化的终态变更。
const (
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// 订单默认配置常量
const (
	DefaultDeliveryFee              = 60
	DefaultTaxRatePercent           = 5
	DefaultEstimatedDeliveryMinutes = 35
)

// 队列常量
const (
	QueueDefault = "default"

	TaskOrderPlaced    = "order:placed"
	TaskOrderCancelled = "order:cancelled"
)
