package worker

import (
	"context"
	"encoding/json"

	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/provider"
	"github.com/foodie-app/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者。当前只做通知落日志，邮件/推送网关不在本服务内。
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderNotice)
	mux.HandleFunc(queue.TaskOrderCancelled, c.handleOrderNotice)
}

func (c *Consumer) handleOrderNotice(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderNoticePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_notice_unmarshal_failed", "task", task.Type(), "error", err)
		return err
	}
	if payload.OrderID == 0 || payload.UserID == "" {
		logger.Debugw("worker_order_notice_skip_invalid_payload", "task", task.Type(), "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByUserAndID(payload.UserID, payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_notice_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_notice_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	logger.Infow("order_notice",
		"task", task.Type(),
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"status", payload.Status,
		"total", order.TotalAmount.String(),
	)
	return nil
}
