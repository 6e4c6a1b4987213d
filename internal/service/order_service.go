package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/foodie-app/internal/constants"
	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/models"
	"github.com/foodie-app/internal/queue"
	"github.com/foodie-app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDetail 订单详情（含推导状态与各阶段时间）
type OrderDetail struct {
	Order    models.Order
	Tracking OrderTracking
}

// OrderService 订单服务。订单台账对每个用户只追加，取消是状态变更。
type OrderService struct {
	orderRepo                repository.OrderRepository
	cartRepo                 repository.CartRepository
	queueClient              *queue.Client
	pricing                  PricingConfig
	estimatedDeliveryMinutes int
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, queueClient *queue.Client, pricing PricingConfig, estimatedDeliveryMinutes int) *OrderService {
	if estimatedDeliveryMinutes <= 0 {
		estimatedDeliveryMinutes = constants.DefaultEstimatedDeliveryMinutes
	}
	return &OrderService{
		orderRepo:                orderRepo,
		cartRepo:                 cartRepo,
		queueClient:              queueClient,
		pricing:                  pricing,
		estimatedDeliveryMinutes: estimatedDeliveryMinutes,
	}
}

// PlaceOrder 结算下单。校验全部通过后，在同一事务内把购物车快照冻结为
// 订单并删除快照中的行；任一步失败则整体回滚，购物车保持原样。
func (s *OrderService) PlaceOrder(userID, deliveryAddress string) (*models.Order, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, ErrMissingAddress
	}
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := ComputeTotals(lines, s.pricing)
	now := time.Now()
	estimated := now.Add(time.Duration(s.estimatedDeliveryMinutes) * time.Minute)

	items := make([]models.OrderItem, 0, len(lines))
	lineIDs := make([]uint, 0, len(lines))
	for _, line := range lines {
		lineIDs = append(lineIDs, line.ID)
		lineTotal := line.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, models.OrderItem{
			ItemID:      line.ItemID,
			Name:        line.Name,
			PriceAmount: line.PriceAmount,
			ImageURL:    line.ImageURL,
			Category:    line.Category,
			Quantity:    line.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	order := &models.Order{
		OrderNo:             generateOrderNo(),
		UserID:              userID,
		DeliveryAddress:     strings.TrimSpace(deliveryAddress),
		Subtotal:            models.NewMoneyFromDecimal(totals.Subtotal),
		DeliveryFee:         models.NewMoneyFromDecimal(totals.DeliveryFee),
		Tax:                 models.NewMoneyFromDecimal(totals.Tax),
		TotalAmount:         models.NewMoneyFromDecimal(totals.GrandTotal),
		Status:              constants.OrderStatusConfirmed,
		EstimatedDeliveryAt: &estimated,
		CreatedAt:           now,
		UpdatedAt:           now,
		Items:               items,
	}

	// 只删除冻结进订单的那些行。快照与提交之间并发加入的行
	// 既不在订单里，也不应被清掉。
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).DeleteByIDs(lineIDs)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderNotice(queue.OrderNoticePayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		UserID:  order.UserID,
		Status:  order.Status,
	}, constants.TaskOrderPlaced); err != nil {
		logger.Warnw("order_placed_notice_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}
	return order, nil
}

// ListOrders 获取用户订单，按下单时间倒序，状态按读取时刻推导
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		// 无订单时序列化为 []，不是 null
		orders = make([]models.Order, 0)
	}
	now := time.Now()
	for i := range orders {
		orders[i].Status = ProjectStatus(orders[i].CreatedAt, now, orders[i].CancelledAt)
	}
	return orders, nil
}

// GetOrder 获取单个订单详情。不属于该用户的订单视为不存在。
func (s *OrderService) GetOrder(userID string, orderID uint) (*OrderDetail, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	order, err := s.orderRepo.GetByUserAndID(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	now := time.Now()
	order.Status = ProjectStatus(order.CreatedAt, now, order.CancelledAt)
	return &OrderDetail{
		Order:    *order,
		Tracking: Tracking(order.CreatedAt, now, order.CancelledAt),
	}, nil
}

// CancelOrder 取消订单。按读取时刻的推导状态判断：已送达或已取消的订单
// 不可再取消。
func (s *OrderService) CancelOrder(userID string, orderID uint) (*models.Order, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	order, err := s.orderRepo.GetByUserAndID(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	now := time.Now()
	projected := ProjectStatus(order.CreatedAt, now, order.CancelledAt)
	if IsTerminalStatus(projected) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{
		"cancelled_at": now,
		"updated_at":   now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled, updates); err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusCancelled
	order.CancelledAt = &now
	order.UpdatedAt = now

	if err := s.queueClient.EnqueueOrderNotice(queue.OrderNoticePayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		UserID:  order.UserID,
		Status:  order.Status,
	}, constants.TaskOrderCancelled); err != nil {
		logger.Warnw("order_cancelled_notice_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}
	return order, nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("FD%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		fmt.Fprintf(&b, "%d", n.Int64())
	}
	return b.String()
}
