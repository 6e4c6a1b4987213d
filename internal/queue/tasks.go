package queue

import (
	"encoding/json"
	"fmt"

	"github.com/foodie-app/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 下单通知任务
	TaskOrderPlaced = constants.TaskOrderPlaced
	// TaskOrderCancelled 取消订单通知任务
	TaskOrderCancelled = constants.TaskOrderCancelled
)

// OrderNoticePayload 订单通知任务载荷
type OrderNoticePayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
}

// NewOrderNoticeTask 构建订单通知任务
func NewOrderNoticeTask(payload OrderNoticePayload, taskName string) (*asynq.Task, error) {
	if taskName != TaskOrderPlaced && taskName != TaskOrderCancelled {
		return nil, fmt.Errorf("unknown order notice task: %s", taskName)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskName, data), nil
}
