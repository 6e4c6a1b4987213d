// Package auth 是对外部鉴权服务的最小适配层：校验 token 前缀并抽取
// 不透明的用户标识。签发与权限体系由外部系统负责。
package auth

import (
	"errors"
	"fmt"
	"strings"
)

// TokenPrefix 合法 token 的固定前缀
const TokenPrefix = "g1_token_"

const fallbackUserID = "user123"

// ErrInvalidToken token 缺失或格式不合法
var ErrInvalidToken = errors.New("invalid user_auth_token format")

// Identity 从 token 推导出的用户身份
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// ParseToken 校验 token 并抽取用户身份。token 形如 g1_token_<user_id>，
// 第三段缺失时使用演示用的默认标识。
func ParseToken(token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" || !strings.HasPrefix(token, TokenPrefix) {
		return nil, ErrInvalidToken
	}
	parts := strings.Split(token, "_")
	userID := fallbackUserID
	if len(parts) > 2 && parts[2] != "" {
		userID = parts[2]
	}
	return &Identity{
		UserID: userID,
		Email:  fmt.Sprintf("%s@example.com", userID),
		Name:   fmt.Sprintf("User %s", userID),
		Token:  token,
	}, nil
}
