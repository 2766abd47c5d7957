package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/herblink/herb-market/config"
	_ "github.com/herblink/herb-market/docs"
	"github.com/herblink/herb-market/internal/api"
	"github.com/herblink/herb-market/internal/api/handler"
	"github.com/herblink/herb-market/internal/cache"
	"github.com/herblink/herb-market/internal/kvstore"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/database"
	"github.com/herblink/herb-market/pkg/logger"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// @title 中药材B2B交易平台 API
// @version 1.0
// @description 中药材批发交易平台，支持演示模式与数据库模式
// @BasePath /
func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.App.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("Sentry 初始化失败", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.Trace.Enabled {
		shutdown := initTracer(cfg)
		defer shutdown()
	}

	// 仅在 redis 后端下建连接，避免无 Redis 环境里缓存读
	// 每次都白跑一趟失败的网络请求
	var redisClient *redis.Client
	if cfg.Demo.Backend == "redis" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// 演示模式走键值存储，数据库模式走 GORM
	var (
		userRepo    repository.UserRepository
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
	)
	store := repository.NewDemoStore(newKVStore(cfg, redisClient))
	bootstrap := service.NewBootstrap(store)

	if cfg.IsDemoMode() {
		bootstrap.Initialize()
		userRepo = repository.NewDemoUserRepository(store)
		productRepo = repository.NewDemoProductRepository(store)
		orderRepo = repository.NewDemoOrderRepository(store)
		logger.Info("演示模式启动", zap.String("backend", cfg.Demo.Backend))
	} else {
		db := must(database.InitDB(cfg))
		if err := repository.InitSchema(db); err != nil {
			panic(err)
		}
		userRepo = repository.NewGormUserRepository(db)
		productRepo = repository.NewGormProductRepository(db)
		orderRepo = repository.NewGormOrderRepository(db)
		logger.Info("数据库模式启动", zap.String("driver", cfg.Database.Driver))
	}

	catalog := service.NewCatalog(store)
	var reader service.ProductReader
	if cfg.IsDemoMode() {
		reader = service.NewDemoProductReader(catalog)
	} else {
		reader = service.NewDBProductReader(productRepo)
	}
	catCache := cache.NewCatalogCache(redisClient, 30*time.Second, reader.Visible)
	cart := service.NewCart(store)
	orders := service.NewOrders(orderRepo, productRepo, cart)
	sourcing := service.NewSourcing(store)
	groupBuy := service.NewGroupBuy(store, time.Minute)
	auth := service.NewAuth(userRepo, store, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	stopSweeper := groupBuy.StartSweeper()

	h := handler.New(auth, catalog, reader, catCache, sourcing, cart, orders, groupBuy, bootstrap)
	router := api.NewRouter(cfg, h, auth)

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
	go func() {
		logger.Info("HTTP 服务监听", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP 服务退出", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := stopSweeper(ctx); err != nil {
		logger.Warn("团购过期巡检停止超时", zap.Error(err))
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("优雅关闭失败", zap.Error(err))
	}
	logger.Info("服务已退出")
}

func newKVStore(cfg *config.Config, redisClient *redis.Client) kvstore.Store {
	switch cfg.Demo.Backend {
	case "file":
		return kvstore.NewFile(cfg.Demo.Dir)
	case "redis":
		return kvstore.NewRedis(redisClient, "demo:")
	default:
		return kvstore.NewMemory()
	}
}

func initTracer(cfg *config.Config) func() {
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpoint(cfg.Trace.OTLPEndpoint),
		otlptracehttp.WithInsecure())
	if err != nil {
		logger.Warn("OTLP exporter 初始化失败", zap.Error(err))
		return func() {}
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}
}
