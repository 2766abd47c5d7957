// Package middleware 提供认证、限流与异常捕获中间件。
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/response"
)

// Auth 校验 Bearer Token 并把用户放入上下文。
// 演示模式下没有携带 Token 的请求回退为演示态当前用户。
func Auth(auth *service.Auth, demoFallback bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			user, err := auth.ParseToken(c.Request.Context(), token)
			if err != nil {
				response.Unauthorized(c, "无效的令牌")
				c.Abort()
				return
			}
			c.Set("user", user)
			c.Next()
			return
		}
		if demoFallback {
			if user := auth.CurrentUser(); user != nil {
				c.Set("user", user)
			}
		}
		c.Next()
	}
}

// AdminOnly 仅管理员放行
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("user")
		user, _ := v.(*model.User)
		if !ok || user == nil || user.Role != model.RoleAdmin {
			response.Forbidden(c, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}
