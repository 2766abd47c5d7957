package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/herblink/herb-market/pkg/response"
)

type approveReviewRequest struct {
	AdjustedPrice *float64 `json:"adjusted_price" binding:"omitempty,gt=0"`
	Notes         string   `json:"notes"`
}

type approveBuyingRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// ListProductReviews 商品审核记录，缺失的历史商品会先补齐已通过记录
// @Summary 商品审核列表
// @Tags 平台管理
// @Produce json
// @Success 200 {object} response.Response{data=[]model.ProductReview}
// @Router /api/v1/admin/reviews [get]
func (h *Handler) ListProductReviews(c *gin.Context) {
	response.Success(c, h.catalog.Reviews())
}

// ApproveProductReview 审核通过商品，可同时调价
// @Summary 审核通过商品
// @Tags 平台管理
// @Accept json
// @Produce json
// @Param id path string true "审核记录ID"
// @Param request body approveReviewRequest true "调价与备注"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/reviews/{id}/approve [post]
func (h *Handler) ApproveProductReview(c *gin.Context) {
	var req approveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !h.catalog.ApproveProductWithPriceAdjustment(c.Param("id"), req.AdjustedPrice, req.Notes) {
		response.NotFound(c, "审核记录不存在")
		return
	}
	h.catCache.Invalidate(c.Request.Context())
	response.Success(c, nil)
}

// ApproveBuyingRequest 审核通过采购请求
// @Summary 审核通过采购请求
// @Tags 平台管理
// @Accept json
// @Produce json
// @Param id path string true "采购请求ID"
// @Param request body approveBuyingRequest true "审核备注"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/buying-requests/{id}/approve [post]
func (h *Handler) ApproveBuyingRequest(c *gin.Context) {
	var req approveBuyingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !h.sourcing.ApproveBuyingRequest(c.Param("id"), req.AdminNotes) {
		response.NotFound(c, "采购请求不存在")
		return
	}
	response.Success(c, nil)
}

// ResetDemoData 清空并重建演示数据
// @Summary 重置演示数据
// @Tags 平台管理
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/admin/demo/reset [post]
func (h *Handler) ResetDemoData(c *gin.Context) {
	h.bootstrap.Reset()
	// 重置后立刻回到出厂种子数据，不等下次进程启动
	h.bootstrap.Initialize()
	h.catCache.Invalidate(c.Request.Context())
	response.Success(c, nil)
}

// ExportDemoData 导出演示数据快照
// @Summary 导出演示数据
// @Tags 平台管理
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/admin/demo/export [get]
func (h *Handler) ExportDemoData(c *gin.Context) {
	data, err := h.bootstrap.Export()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.Data(200, "application/json", data)
}

// ImportDemoData 导入演示数据快照，整体覆盖现有数据
// @Summary 导入演示数据
// @Tags 平台管理
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/admin/demo/import [post]
func (h *Handler) ImportDemoData(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.bootstrap.Import(data); err != nil {
		response.BadRequest(c, "快照格式不正确")
		return
	}
	h.catCache.Invalidate(c.Request.Context())
	response.Success(c, nil)
}
