package middleware

import (
	"brainvault/pkg/context"
	"brainvault/pkg/log"
	"brainvault/pkg/response"
	"brainvault/pkg/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader 请求链路 ID，客户端未携带时生成
const RequestIDHeader = "X-Request-ID"

// GinZap 每个请求一行访问日志
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(context.CtxRequestID, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if uid, ok := c.Get(context.CtxUserID); ok {
			fields = append(fields, zap.Any("user_id", uid))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.L.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.L.Warn("request", fields...)
		default:
			log.L.Info("request", fields...)
		}
	}
}

// Recovery panic 转为 500 并记录堆栈
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.L.Error("panic recovered",
					zap.String("request_id", c.GetString(context.CtxRequestID)),
					zap.String("trace", utils.PanicTrace(err)),
				)
				response.Abort(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}
