package service

import (
	"time"

	"github.com/foodie-app/internal/constants"
)

// 状态推导阈值（自下单起经过的分钟数）
const (
	statusPreparingAfter      = 5 * time.Minute
	statusOutForDeliveryAfter = 20 * time.Minute
	statusDeliveredAfter      = 45 * time.Minute
)

// ProjectStatus 按下单时间推导订单当前状态。状态是读取时计算的，
// 不依赖后台定时任务；cancelled 一经写入即为终态，覆盖时间推导。
func ProjectStatus(createdAt, now time.Time, cancelledAt *time.Time) string {
	if cancelledAt != nil {
		return constants.OrderStatusCancelled
	}
	elapsed := now.Sub(createdAt)
	switch {
	case elapsed >= statusDeliveredAfter:
		return constants.OrderStatusDelivered
	case elapsed >= statusOutForDeliveryAfter:
		return constants.OrderStatusOutForDelivery
	case elapsed >= statusPreparingAfter:
		return constants.OrderStatusPreparing
	default:
		return constants.OrderStatusConfirmed
	}
}

// IsTerminalStatus 判断状态是否终态（不可再取消）
func IsTerminalStatus(status string) bool {
	return status == constants.OrderStatusDelivered || status == constants.OrderStatusCancelled
}

// OrderTracking 各阶段到达时间。未到达的阶段为 nil。
type OrderTracking struct {
	ConfirmedAt      time.Time  `json:"confirmed_at"`
	PreparingAt      *time.Time `json:"preparing_at"`
	OutForDeliveryAt *time.Time `json:"out_for_delivery_at"`
	DeliveredAt      *time.Time `json:"delivered_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
}

// Tracking 推导各阶段到达时间。取消后的订单不再推进后续阶段。
func Tracking(createdAt, now time.Time, cancelledAt *time.Time) OrderTracking {
	tracking := OrderTracking{ConfirmedAt: createdAt, CancelledAt: cancelledAt}
	// 取消前已到达的阶段保留
	cutoff := now
	if cancelledAt != nil && cancelledAt.Before(cutoff) {
		cutoff = *cancelledAt
	}
	if phase := createdAt.Add(statusPreparingAfter); !phase.After(cutoff) {
		tracking.PreparingAt = &phase
	}
	if phase := createdAt.Add(statusOutForDeliveryAfter); !phase.After(cutoff) {
		tracking.OutForDeliveryAt = &phase
	}
	if phase := createdAt.Add(statusDeliveredAfter); !phase.After(cutoff) {
		tracking.DeliveredAt = &phase
	}
	return tracking
}
