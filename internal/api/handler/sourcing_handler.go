package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/response"
)

type createBuyingRequest struct {
	ProductName string  `json:"product_name" binding:"required,notblank"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	TargetPrice float64 `json:"target_price" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// CreateBuyingRequest 买家发布采购请求，等待平台审核
// @Summary 发布采购请求
// @Tags 采购
// @Accept json
// @Produce json
// @Param request body createBuyingRequest true "采购需求"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/buying-requests [post]
func (h *Handler) CreateBuyingRequest(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Unauthorized(c, "未登录")
		return
	}
	var req createBuyingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id := h.sourcing.CreateBuyingRequest(user, service.NewBuyingRequest{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		TargetPrice: req.TargetPrice,
		Description: req.Description,
	})
	response.Success(c, gin.H{"id": id})
}

// ListBuyingRequests 采购请求列表，买家只看到自己的
// @Summary 采购请求列表
// @Tags 采购
// @Produce json
// @Success 200 {object} response.Response{data=[]model.BuyingRequest}
// @Failure 401 {object} response.Response
// @Router /api/v1/buying-requests [get]
func (h *Handler) ListBuyingRequests(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		response.Unauthorized(c, "未登录")
		return
	}
	if user.Role == model.RoleAdmin {
		response.Success(c, h.sourcing.ListBuyingRequests())
		return
	}
	response.Success(c, h.sourcing.ListByBuyer(user.ID))
}

// ListSellerResponses 某采购请求下的卖家报价
// @Summary 卖家报价列表
// @Tags 采购
// @Param id path string true "采购请求ID"
// @Produce json
// @Success 200 {object} response.Response{data=[]model.SellerResponse}
// @Router /api/v1/buying-requests/{id}/responses [get]
func (h *Handler) ListSellerResponses(c *gin.Context) {
	response.Success(c, h.sourcing.SellerResponses(c.Param("id")))
}

// ListGroupBuys 团购活动列表
// @Summary 团购活动
// @Tags 团购
// @Produce json
// @Success 200 {object} response.Response{data=[]model.GroupBuyActivity}
// @Router /api/v1/group-buys [get]
func (h *Handler) ListGroupBuys(c *gin.Context) {
	response.Success(c, h.groupBuy.Activities())
}
