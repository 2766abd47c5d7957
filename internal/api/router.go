// Package api 组装路由与中间件。
package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/herblink/herb-market/config"
	"github.com/herblink/herb-market/internal/api/handler"
	"github.com/herblink/herb-market/internal/api/middleware"
	"github.com/herblink/herb-market/internal/service"
)

// NewRouter 注册全部接口
func NewRouter(cfg *config.Config, h *handler.Handler, auth *service.Auth) *gin.Engine {
	if !cfg.IsDemoMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	handler.RegisterValidations()

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware(cfg.App.Name))
	}
	if cfg.HTTP.RateLimit > 0 {
		r.Use(middleware.RateLimit(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(auth, cfg.IsDemoMode()))
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/logout", h.Logout)
			authGroup.GET("/me", h.Me)
		}

		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/seller/products", h.ListSellerProducts)
		v1.POST("/seller/products", h.CreateSellerProduct)

		v1.GET("/cart", h.GetCart)
		v1.DELETE("/cart", h.ClearCart)
		v1.POST("/cart/items", h.AddCartItem)
		v1.PUT("/cart/items/:product_id", h.UpdateCartItem)
		v1.DELETE("/cart/items/:product_id", h.RemoveCartItem)

		v1.POST("/orders/checkout", h.Checkout)
		v1.GET("/orders", h.ListOrders)
		v1.GET("/orders/:id", h.GetOrder)
		v1.POST("/orders/:id/processing", h.RequestProcessing)

		v1.POST("/buying-requests", h.CreateBuyingRequest)
		v1.GET("/buying-requests", h.ListBuyingRequests)
		v1.GET("/buying-requests/:id/responses", h.ListSellerResponses)

		v1.GET("/group-buys", h.ListGroupBuys)

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/reviews", h.ListProductReviews)
			admin.POST("/reviews/:id/approve", h.ApproveProductReview)
			admin.POST("/buying-requests/:id/approve", h.ApproveBuyingRequest)
			admin.POST("/demo/reset", h.ResetDemoData)
			admin.GET("/demo/export", h.ExportDemoData)
			admin.POST("/demo/import", h.ImportDemoData)
		}
	}

	return r
}
