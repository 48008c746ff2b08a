package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 慢请求阈值：对单条SQL的CRUD接口来说3秒已经异常
const slowRequestThreshold = 3 * time.Second

// Logger 请求日志中间件
// 设计说明:
// 1. 为每个请求生成唯一的请求ID（X-Request-ID响应头），便于排查问题
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录请求体与敏感信息
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 生成请求ID
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		// 2. 处理请求并计时
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)

		// 3. 结构化访问日志
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}

		// 4. 慢请求告警
		if latency > slowRequestThreshold {
			logger.Warn("slow request",
				zap.String("request_id", requestID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}
