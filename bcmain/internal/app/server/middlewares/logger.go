package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 请求日志中间件
// gin.Default 已带基础访问日志，这里补充耗时与状态码的统一格式
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		log.Printf("[HTTP] %s %s status=%d latency=%s",
			c.Request.Method, path, c.Writer.Status(), latency)
	}
}
