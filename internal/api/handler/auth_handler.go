package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/response"
)

type registerRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"required,oneof=buyer seller"`
	BusinessName string `json:"business_name" binding:"required,notblank"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 注册买家或卖家账号
// @Summary 注册账号
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Role, req.BusinessName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrInvalidRole) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user, "token": token})
}

// Login 登录
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Unauthorized(c, "邮箱或密码错误")
		return
	}
	response.Success(c, gin.H{"user": user, "token": token})
}

// Logout 登出，清除演示态的当前用户
// @Summary 登出
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.auth.Logout()
	response.Success(c, nil)
}

// Me 返回当前登录用户
// @Summary 当前用户
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response{data=model.User}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Unauthorized(c, "未登录")
		return
	}
	response.Success(c, user)
}

// currentUser 取出认证中间件放入上下文的用户
func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
