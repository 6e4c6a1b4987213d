package service

import "errors"

// 业务哨兵错误。校验类错误在任何写入发生前返回，调用方不会观察到部分生效。
var (
	ErrInvalidUser       = errors.New("invalid user identity")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrItemNotFound      = errors.New("menu item not found")
	ErrItemNotAvailable  = errors.New("menu item not available")
	ErrItemNotInCart     = errors.New("item not found in cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingAddress    = errors.New("delivery address is required")
	ErrOrderNotFound     = errors.New("order not found or does not belong to user")
	ErrInvalidTransition = errors.New("order cannot be cancelled in current status")
	ErrInvalidAction     = errors.New("unsupported order action")
)
