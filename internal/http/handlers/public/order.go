package public

import (
	"strconv"
	"strings"

	"github.com/foodie-app/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
}

// UpdateOrderRequest 订单动作请求，目前只支持 cancel
type UpdateOrderRequest struct {
	Action string `json:"action" binding:"required"`
}

// ListOrders 获取当前用户的订单列表（新单在前）
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListOrders(uid)
	if err != nil {
		respondServiceError(c, err, "failed to fetch orders")
		return
	}
	response.Success(c, gin.H{
		"orders":  orders,
		"total":   len(orders),
		"user_id": uid,
	})
}

// CreateOrder 结算下单。购物车在同一事务内被清空。
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindBadRequest, "invalid request body")
		return
	}
	order, err := h.OrderService.PlaceOrder(uid, strings.TrimSpace(req.DeliveryAddress))
	if err != nil {
		respondServiceError(c, err, "failed to place order")
		return
	}
	response.Created(c, "Order placed successfully", gin.H{
		"order": order,
	})
}

// GetOrder 获取订单详情（含推导状态与各阶段时间）
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	detail, err := h.OrderService.GetOrder(uid, orderID)
	if err != nil {
		respondServiceError(c, err, "failed to fetch order")
		return
	}
	response.Success(c, gin.H{
		"order":    detail.Order,
		"tracking": detail.Tracking,
	})
}

// UpdateOrder 执行订单动作。仅支持 {"action": "cancel"}。
func (h *Handler) UpdateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindBadRequest, "action is required")
		return
	}
	if req.Action != "cancel" {
		response.BadRequest(c, response.KindInvalidAction, "unsupported action: "+req.Action)
		return
	}
	order, err := h.OrderService.CancelOrder(uid, orderID)
	if err != nil {
		respondServiceError(c, err, "failed to cancel order")
		return
	}
	response.SuccessWithMsg(c, "Order cancelled successfully", gin.H{
		"order": order,
	})
}

func parseOrderID(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || orderID == 0 {
		response.BadRequest(c, response.KindBadRequest, "order id must be a positive integer")
		return 0, false
	}
	return uint(orderID), true
}
