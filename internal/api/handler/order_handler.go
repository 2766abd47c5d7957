package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/response"
)

type processingRequest struct {
	Slicing   bool `json:"slicing"`
	Grinding  bool `json:"grinding"`
	Packaging bool `json:"packaging"`
}

// Checkout 把购物车结算为订单
// @Summary 结算下单
// @Tags 订单
// @Produce json
// @Success 200 {object} response.Response{data=model.Order}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/orders/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Unauthorized(c, "未登录")
		return
	}
	order, err := h.orders.Checkout(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			response.BadRequest(c, "购物车为空")
			return
		}
		response.InternalError(c, err)
		return
	}
	h.catCache.Invalidate(c.Request.Context())
	response.Success(c, order)
}

// ListOrders 订单列表：买家看到自己的订单，卖家看到含自家商品的
// 订单，管理员看到全部
// @Summary 订单列表
// @Tags 订单
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Order}
// @Failure 401 {object} response.Response
// @Router /api/v1/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Unauthorized(c, "未登录")
		return
	}
	var (
		orders []model.Order
		err    error
	)
	switch user.Role {
	case model.RoleAdmin:
		orders, err = h.orders.List(c.Request.Context())
	case model.RoleSeller:
		orders, err = h.orders.ListForSeller(c.Request.Context(), user)
	default:
		orders, err = h.orders.ListForBuyer(c.Request.Context(), user.ID)
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, orders)
}

// GetOrder 订单详情，按角色鉴权
// @Summary 订单详情
// @Tags 订单
// @Param id path string true "订单ID"
// @Produce json
// @Success 200 {object} response.Response{data=model.Order}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Unauthorized(c, "未登录")
		return
	}
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.NotFound(c, "订单不存在")
		case errors.Is(err, service.ErrNotPermitted):
			response.Forbidden(c, "无权查看该订单")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, order)
}

// RequestProcessing 为订单追加加工服务，费用计入订单总额
// @Summary 申请加工服务
// @Tags 订单
// @Accept json
// @Produce json
// @Param id path string true "订单ID"
// @Param request body processingRequest true "加工选项"
// @Success 200 {object} response.Response{data=model.Order}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/orders/{id}/processing [post]
func (h *Handler) RequestProcessing(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Unauthorized(c, "未登录")
		return
	}
	var req processingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	order, err := h.orders.RequestProcessing(c.Request.Context(), c.Param("id"), user, model.ProcessingOptions{
		Slicing:   req.Slicing,
		Grinding:  req.Grinding,
		Packaging: req.Packaging,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.NotFound(c, "订单不存在")
		case errors.Is(err, service.ErrNotPermitted):
			response.Forbidden(c, "无权操作该订单")
		case errors.Is(err, repository.ErrProcessingUnsupported):
			response.BadRequest(c, "当前模式不支持加工服务")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, order)
}
