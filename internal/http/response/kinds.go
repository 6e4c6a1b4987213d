package response

// 错误类别常量，与业务错误一一对应
const (
	KindBadRequest        = "bad_request"
	KindInvalidQuantity   = "invalid_quantity"
	KindItemNotFound      = "item_not_found"
	KindItemNotAvailable  = "item_not_available"
	KindItemNotInCart     = "item_not_in_cart"
	KindEmptyCart         = "empty_cart"
	KindMissingAddress    = "missing_address"
	KindNotFound          = "not_found"
	KindOrderNotFound     = "order_not_found"
	KindInvalidTransition = "invalid_transition"
	KindInvalidAction     = "invalid_action"
	KindUnauthorized      = "unauthorized"
	KindMethodNotAllowed  = "method_not_allowed"
	KindRateLimited       = "rate_limited"
	KindUnexpected        = "unexpected"
)
