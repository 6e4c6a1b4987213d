package service

import (
	"time"

	"github.com/foodie-app/internal/models"
	"github.com/foodie-app/internal/repository"
)

// CartView 购物车快照（行 + 金额汇总），只读
type CartView struct {
	Lines  []models.CartItem
	Totals Totals
}

// CartService 购物车服务。所有操作只作用于单个用户的购物车。
type CartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	pricing  PricingConfig
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository, pricing PricingConfig) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		pricing:  pricing,
	}
}

// GetCart 获取用户购物车快照及计价汇总
func (s *CartService) GetCart(userID string) (*CartView, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		// 空购物车序列化为 []，不是 null
		lines = make([]models.CartItem, 0)
	}
	return &CartView{
		Lines:  lines,
		Totals: ComputeTotals(lines, s.pricing),
	}, nil
}

// AddItem 加入购物车。已有同菜品行则累加数量（原子更新，重复调用累积
// 而非覆盖），否则以当前菜单数据为快照新增一行。
func (s *CartService) AddItem(userID string, itemID uint, quantity int) error {
	if userID == "" {
		return ErrInvalidUser
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	if !item.Available {
		return ErrItemNotAvailable
	}

	hit, err := s.cartRepo.AddQuantity(userID, itemID, quantity)
	if err != nil {
		return err
	}
	if hit {
		return nil
	}

	now := time.Now()
	line := &models.CartItem{
		UserID:      userID,
		ItemID:      itemID,
		Quantity:    quantity,
		Name:        item.Name,
		PriceAmount: item.PriceAmount,
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if insertErr := s.cartRepo.Insert(line); insertErr != nil {
		// 并发下另一个请求可能刚插入了同一行，落回累加
		hit, err = s.cartRepo.AddQuantity(userID, itemID, quantity)
		if err != nil {
			return err
		}
		if !hit {
			return insertErr
		}
	}
	return nil
}

// SetQuantity 覆盖购物车行的数量。quantity <= 0 等价于删除；
// 行不存在时返回 ErrItemNotInCart，不会隐式新增。
func (s *CartService) SetQuantity(userID string, itemID uint, quantity int) error {
	if userID == "" {
		return ErrInvalidUser
	}
	if quantity <= 0 {
		return s.RemoveItem(userID, itemID)
	}
	hit, err := s.cartRepo.SetQuantity(userID, itemID, quantity)
	if err != nil {
		return err
	}
	if !hit {
		return ErrItemNotInCart
	}
	return nil
}

// RemoveItem 删除购物车行。行不存在时静默成功。
func (s *CartService) RemoveItem(userID string, itemID uint) error {
	if userID == "" {
		return ErrInvalidUser
	}
	return s.cartRepo.DeleteByUserAndItem(userID, itemID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID string) error {
	if userID == "" {
		return ErrInvalidUser
	}
	return s.cartRepo.ClearByUser(userID)
}
