package public

import (
	"github.com/foodie-app/internal/auth"
	"github.com/foodie-app/internal/http/response"

	"github.com/gin-gonic/gin"
)

// IdentityContextKey 鉴权中间件写入的身份上下文 key
const IdentityContextKey = "identity"

func getIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, ok := c.Get(IdentityContextKey)
	if !ok {
		response.Unauthorized(c, "missing user identity")
		c.Abort()
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	if !ok || identity == nil || identity.UserID == "" {
		response.Unauthorized(c, "invalid user identity")
		c.Abort()
		return nil, false
	}
	return identity, true
}

func getUserID(c *gin.Context) (string, bool) {
	identity, ok := getIdentity(c)
	if !ok {
		return "", false
	}
	return identity.UserID, true
}
