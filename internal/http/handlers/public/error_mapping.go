package public

import (
	"errors"
	"net/http"

	"github.com/foodie-app/internal/http/response"
	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系
type mappedHandlerError struct {
	target error
	status int
	kind   string
}

var commonErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidUser, status: http.StatusUnauthorized, kind: response.KindUnauthorized},
	{target: service.ErrInvalidQuantity, status: http.StatusBadRequest, kind: response.KindInvalidQuantity},
	{target: service.ErrItemNotFound, status: http.StatusNotFound, kind: response.KindItemNotFound},
	{target: service.ErrItemNotAvailable, status: http.StatusBadRequest, kind: response.KindItemNotAvailable},
	{target: service.ErrItemNotInCart, status: http.StatusNotFound, kind: response.KindItemNotInCart},
	{target: service.ErrEmptyCart, status: http.StatusBadRequest, kind: response.KindEmptyCart},
	{target: service.ErrMissingAddress, status: http.StatusBadRequest, kind: response.KindMissingAddress},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, kind: response.KindOrderNotFound},
	{target: service.ErrInvalidTransition, status: http.StatusBadRequest, kind: response.KindInvalidTransition},
	{target: service.ErrInvalidAction, status: http.StatusBadRequest, kind: response.KindInvalidAction},
}

// respondServiceError 将业务错误映射为接口错误；未知错误统一按 500 返回，
// 不透出内部细节。
func respondServiceError(c *gin.Context, err error, fallbackMessage string) {
	for _, rule := range commonErrorRules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.status, rule.kind, rule.target.Error())
			return
		}
	}
	logger.Errorw("handler_unexpected_error", "path", c.FullPath(), "error", err)
	response.Internal(c, fallbackMessage)
}
