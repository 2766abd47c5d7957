package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/herblink/herb-market/pkg/logger"
	"github.com/herblink/herb-market/pkg/response"
)

// Recovery 捕获 panic，上报 Sentry 后返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				sentry.CaptureException(err)
				logger.Error("请求处理 panic",
					zap.Any("recover", r),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Code:    http.StatusInternalServerError,
					Message: "服务器内部错误",
				})
			}
		}()
		c.Next()
	}
}
