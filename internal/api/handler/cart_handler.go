package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/pkg/response"
)

type addCartItemRequest struct {
	ProductID   string  `json:"productId" binding:"required"`
	ProductName string  `json:"productName" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	SellerName  string  `json:"sellerName"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 购物车内容与合计
// @Summary 购物车
// @Tags 购物车
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, gin.H{
		"items":        h.cart.Items(),
		"total_amount": h.cart.TotalAmount(),
		"item_count":   h.cart.ItemCount(),
	})
}

// AddCartItem 加入购物车，同商品合并数量
// @Summary 加入购物车
// @Tags 购物车
// @Accept json
// @Produce json
// @Param request body addCartItemRequest true "商品条目"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/cart/items [post]
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.cart.AddItem(model.CartItem{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Price:       req.Price,
		Quantity:    req.Quantity,
		SellerName:  req.SellerName,
	})
	response.Success(c, nil)
}

// UpdateCartItem 修改数量，数量小于等于 0 时移除
// @Summary 修改购物车数量
// @Tags 购物车
// @Accept json
// @Produce json
// @Param product_id path string true "商品ID"
// @Param request body updateQuantityRequest true "数量"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/cart/items/{product_id} [put]
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.cart.UpdateQuantity(c.Param("product_id"), req.Quantity)
	response.Success(c, nil)
}

// RemoveCartItem 移除商品
// @Summary 移除购物车商品
// @Tags 购物车
// @Param product_id path string true "商品ID"
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/cart/items/{product_id} [delete]
func (h *Handler) RemoveCartItem(c *gin.Context) {
	h.cart.RemoveItem(c.Param("product_id"))
	response.Success(c, nil)
}

// ClearCart 清空购物车
// @Summary 清空购物车
// @Tags 购物车
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	response.Success(c, nil)
}
