// Package handler 实现 HTTP 接口层，只做参数校验与服务编排。
package handler

import (
	"github.com/herblink/herb-market/internal/cache"
	"github.com/herblink/herb-market/internal/service"
)

// Handler 聚合各业务服务
type Handler struct {
	auth      *service.Auth
	catalog   *service.Catalog
	products  service.ProductReader
	catCache  *cache.CatalogCache
	sourcing  *service.Sourcing
	cart      *service.Cart
	orders    *service.Orders
	groupBuy  *service.GroupBuy
	bootstrap *service.Bootstrap
}

func New(
	auth *service.Auth,
	catalog *service.Catalog,
	products service.ProductReader,
	catCache *cache.CatalogCache,
	sourcing *service.Sourcing,
	cart *service.Cart,
	orders *service.Orders,
	groupBuy *service.GroupBuy,
	bootstrap *service.Bootstrap,
) *Handler {
	return &Handler{
		auth:      auth,
		catalog:   catalog,
		products:  products,
		catCache:  catCache,
		sourcing:  sourcing,
		cart:      cart,
		orders:    orders,
		groupBuy:  groupBuy,
		bootstrap: bootstrap,
	}
}
