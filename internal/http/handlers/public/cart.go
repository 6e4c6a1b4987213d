package public

import (
	"strconv"

	"github.com/foodie-app/internal/http/response"
	"github.com/foodie-app/internal/models"
	"github.com/foodie-app/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// CartSummary 购物车金额汇总响应
type CartSummary struct {
	TotalItems  int          `json:"total_items"`
	TotalPrice  models.Money `json:"total_price"`
	DeliveryFee models.Money `json:"delivery_fee"`
	Tax         models.Money `json:"tax"`
	GrandTotal  models.Money `json:"grand_total"`
}

func newCartSummary(totals service.Totals) CartSummary {
	return CartSummary{
		TotalItems:  totals.TotalItems,
		TotalPrice:  models.NewMoneyFromDecimal(totals.Subtotal),
		DeliveryFee: models.NewMoneyFromDecimal(totals.DeliveryFee),
		Tax:         models.NewMoneyFromDecimal(totals.Tax),
		GrandTotal:  models.NewMoneyFromDecimal(totals.GrandTotal),
	}
}

// GetCart 获取购物车（行 + 计价汇总）
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	view, err := h.CartService.GetCart(uid)
	if err != nil {
		respondServiceError(c, err, "failed to fetch cart")
		return
	}
	response.Success(c, gin.H{
		"items":   view.Lines,
		"summary": newCartSummary(view.Totals),
		"user_id": uid,
	})
}

// AddCartItem 加入购物车（已有行累加数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindBadRequest, "item_id and quantity are required")
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if err := h.CartService.AddItem(uid, req.ItemID, quantity); err != nil {
		respondServiceError(c, err, "failed to add item to cart")
		return
	}

	view, err := h.CartService.GetCart(uid)
	if err != nil {
		respondServiceError(c, err, "failed to fetch cart")
		return
	}
	response.SuccessWithMsg(c, "Item added to cart", gin.H{
		"cart_items":     len(view.Lines),
		"total_quantity": view.Totals.TotalItems,
	})
}

// UpdateCartItem 覆盖购物车行数量（quantity <= 0 时删除该行）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindBadRequest, "item_id and quantity are required")
		return
	}
	if err := h.CartService.SetQuantity(uid, req.ItemID, req.Quantity); err != nil {
		respondServiceError(c, err, "failed to update cart")
		return
	}
	response.SuccessWithMsg(c, "Cart updated successfully", nil)
}

// DeleteCartItem 删除单个购物车行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("item_id")
	itemID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || itemID == 0 {
		response.BadRequest(c, response.KindBadRequest, "item_id must be a positive integer")
		return
	}
	if err := h.CartService.RemoveItem(uid, uint(itemID)); err != nil {
		respondServiceError(c, err, "failed to remove item from cart")
		return
	}
	response.SuccessWithMsg(c, "Item removed from cart", nil)
}

// ClearCart 清空购物车；携带 item_id 查询参数时只删除对应行
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Query("item_id")
	if rawID != "" {
		itemID, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil || itemID == 0 {
			response.BadRequest(c, response.KindBadRequest, "item_id must be a positive integer")
			return
		}
		if err := h.CartService.RemoveItem(uid, uint(itemID)); err != nil {
			respondServiceError(c, err, "failed to remove item from cart")
			return
		}
		response.SuccessWithMsg(c, "Item removed from cart", nil)
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondServiceError(c, err, "failed to clear cart")
		return
	}
	response.SuccessWithMsg(c, "Cart cleared successfully", nil)
}
