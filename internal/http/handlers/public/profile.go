package public

import (
	"github.com/foodie-app/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProfile 返回当前令牌解析出的用户身份
func (h *Handler) GetProfile(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"user": gin.H{
			"id":    identity.UserID,
			"email": identity.Email,
			"name":  identity.Name,
		},
	})
}
