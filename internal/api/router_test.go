package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/herblink/herb-market/config"
	"github.com/herblink/herb-market/internal/api/handler"
	"github.com/herblink/herb-market/internal/cache"
	"github.com/herblink/herb-market/internal/kvstore"
	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Init("error"))

	cfg := &config.Config{}
	cfg.App.Mode = "demo"
	cfg.Auth.JWTSecret = "test-secret"

	store := repository.NewDemoStore(kvstore.NewMemory())
	bootstrap := service.NewBootstrap(store)
	bootstrap.Initialize()

	catalog := service.NewCatalog(store)
	reader := service.NewDemoProductReader(catalog)
	catCache := cache.NewCatalogCache(nil, time.Minute, reader.Visible)
	cart := service.NewCart(store)
	orders := service.NewOrders(
		repository.NewDemoOrderRepository(store),
		repository.NewDemoProductRepository(store),
		cart,
	)
	sourcing := service.NewSourcing(store)
	groupBuy := service.NewGroupBuy(store, time.Minute)
	auth := service.NewAuth(repository.NewDemoUserRepository(store), store, cfg.Auth.JWTSecret, time.Hour)

	h := handler.New(auth, catalog, reader, catCache, sourcing, cart, orders, groupBuy, bootstrap)
	return NewRouter(cfg, h, auth)
}

// newRealModeRouter 以数据库模式组装路由，商品读路径走 GORM 仓储
func newRealModeRouter(t *testing.T) (*gin.Engine, repository.ProductRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Init("error"))

	cfg := &config.Config{}
	cfg.App.Mode = "real"
	cfg.Auth.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repository.InitSchema(db))

	productRepo := repository.NewGormProductRepository(db)
	store := repository.NewDemoStore(kvstore.NewMemory())
	catalog := service.NewCatalog(store)
	reader := service.NewDBProductReader(productRepo)
	catCache := cache.NewCatalogCache(nil, time.Minute, reader.Visible)
	cart := service.NewCart(store)
	orders := service.NewOrders(repository.NewGormOrderRepository(db), productRepo, cart)
	sourcing := service.NewSourcing(store)
	groupBuy := service.NewGroupBuy(store, time.Minute)
	auth := service.NewAuth(repository.NewGormUserRepository(db), store, cfg.Auth.JWTSecret, time.Hour)

	h := handler.New(auth, catalog, reader, catCache, sourcing, cart, orders, groupBuy, service.NewBootstrap(store))
	return NewRouter(cfg, h, auth), productRepo
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRealModeProductsServedFromDatabase(t *testing.T) {
	r, productRepo := newRealModeRouter(t)

	// 数据库为空时目录为空，而不是演示种子
	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	assert.Empty(t, products)

	p := model.Product{
		ID:       "p1",
		NameCN:   "当归",
		Price:    45,
		Stock:    100,
		SellerID: "seller-db-1",
	}
	require.NoError(t, productRepo.Create(context.Background(), &p))

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0]["id"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/products/p1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "当归", got["name_cn"])
}

func TestRealModeSellerProductsServedFromDatabase(t *testing.T) {
	r, productRepo := newRealModeRouter(t)

	require.NoError(t, productRepo.Create(context.Background(), &model.Product{
		ID: "p1", NameCN: "当归", Price: 45, Stock: 100, SellerID: "other-seller",
	}))

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":         "seller@example.com",
		"password":      "secret123",
		"role":          "seller",
		"business_name": "甘肃岷县药材合作社",
	})
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reg))

	require.NoError(t, productRepo.Create(context.Background(), &model.Product{
		ID: "p2", NameCN: "党参", Price: 80, Stock: 50, SellerID: "seller@example.com",
	}))

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/seller/products", reg.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "p2", mine[0]["id"])
}

func TestAdminResetReseedsDemoData(t *testing.T) {
	r := newTestRouter(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@platform.com",
		"password": "anything",
	})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/admin/demo/reset", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 重置后目录立刻回到出厂种子，不需要等进程重启
	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	assert.Len(t, products, 20)
}

func TestListProductsReturnsSeededCatalog(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	assert.Len(t, products, 20)
}

func TestRegisterLoginAndMe(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":         "buyer@example.com",
		"password":      "secret123",
		"role":          "buyer",
		"business_name": "同仁堂采购部",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reg))
	require.NotEmpty(t, reg.Token)

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", reg.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, "buyer@example.com", me["email"])
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r := newTestRouter(t)

	// 买家无法访问管理接口
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":         "buyer2@example.com",
		"password":      "secret123",
		"role":          "buyer",
		"business_name": "买家",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reg))

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/reviews", reg.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 种子管理员账号可以登录并访问
	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@platform.com",
		"password": "anything",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/reviews", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":         "buyer3@example.com",
		"password":      "secret123",
		"role":          "buyer",
		"business_name": "买家三",
	})
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reg))

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", reg.Token, gin.H{
		"productId":   "1",
		"productName": "当归",
		"price":       45.0,
		"quantity":    2,
		"sellerName":  "甘肃岷县药材合作社",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/orders/checkout", reg.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var order map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &order))
	assert.Equal(t, 90.0, order["total_amount"])

	// 结算后购物车清空
	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/cart", reg.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		ItemCount int `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &cart))
	assert.Equal(t, 0, cart.ItemCount)

	// 空购物车再次结算报错
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/orders/checkout", reg.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
