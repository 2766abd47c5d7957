package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/response"
)

type createProductRequest struct {
	NameCN      string  `json:"name_cn" binding:"required,notblank"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"required,gte=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// ListProducts 买家可见商品目录
// @Summary 商品目录
// @Tags 商品
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Product}
// @Router /api/v1/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.catCache.VisibleProducts(c.Request.Context())
	response.Success(c, products)
}

// GetProduct 商品详情（仅限买家可见集合）
// @Summary 商品详情
// @Tags 商品
// @Param id path string true "商品ID"
// @Produce json
// @Success 200 {object} response.Response{data=model.Product}
// @Failure 404 {object} response.Response
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	for _, p := range h.catCache.VisibleProducts(c.Request.Context()) {
		if p.ID == id {
			response.Success(c, p)
			return
		}
	}
	response.NotFound(c, "商品不存在")
}

// CreateSellerProduct 卖家上架商品，进入待审核状态
// @Summary 上架商品
// @Tags 商品
// @Accept json
// @Produce json
// @Param request body createProductRequest true "商品信息"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/seller/products [post]
func (h *Handler) CreateSellerProduct(c *gin.Context) {
	user := currentUser(c)
	if user == nil || user.Role != model.RoleSeller {
		response.Forbidden(c, "仅卖家可上架商品")
		return
	}
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	product, reviewID := h.catalog.CreateSellerProduct(user, service.NewSellerProduct{
		NameCN:      req.NameCN,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	h.catCache.Invalidate(c.Request.Context())
	response.Success(c, gin.H{"product": product, "review_id": reviewID})
}

// ListSellerProducts 卖家名下商品（含待审核）
// @Summary 卖家商品列表
// @Tags 商品
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Product}
// @Failure 403 {object} response.Response
// @Router /api/v1/seller/products [get]
func (h *Handler) ListSellerProducts(c *gin.Context) {
	user := currentUser(c)
	if user == nil || user.Role != model.RoleSeller {
		response.Forbidden(c, "仅卖家可查看")
		return
	}
	response.Success(c, h.products.BySeller(c.Request.Context(), user.ID))
}
