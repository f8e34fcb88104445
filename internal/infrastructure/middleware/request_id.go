package middleware

import (
	"meiduo_user_server/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID 为每个请求分配请求 ID，客户端已携带时沿用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(logger.RequestIDKey)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(logger.RequestIDKey, reqID)
		c.Header(logger.RequestIDKey, reqID)
		c.Next()
	}
}
