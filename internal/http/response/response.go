package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 成功响应结构
type Response struct {
	Success bool        `json:"success"`        // 成功标志
	Msg     string      `json:"msg,omitempty"`  // 提示消息
	Data    interface{} `json:"data,omitempty"` // 数据内容
}

// ErrorBody 错误内容
type ErrorBody struct {
	Kind    string `json:"kind"`    // 错误类别
	Message string `json:"message"` // 提示消息
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMsg 成功响应（自定义消息）
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Msg:     msg,
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Msg:     msg,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, status int, kind, message string) {
	c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     ErrorBody{Kind: kind, Message: message},
		RequestID: requestID(c),
	})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, kind, message string) {
	Error(c, http.StatusBadRequest, kind, message)
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, KindUnauthorized, message)
}

// NotFound 404 响应
func NotFound(c *gin.Context, kind, message string) {
	Error(c, http.StatusNotFound, kind, message)
}

// MethodNotAllowed 405 响应
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, KindMethodNotAllowed, "method not allowed")
}

// Internal 500 响应。不向调用方透出内部错误细节。
func Internal(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, KindUnexpected, message)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	value, ok := c.Get("request_id")
	if !ok {
		return ""
	}
	if id, ok := value.(string); ok {
		return id
	}
	return ""
}
