// 命令 seed 初始化或重置数据。
// 演示模式下重建键值存储中的演示数据，数据库模式下建表并写入种子数据。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/herblink/herb-market/config"
	"github.com/herblink/herb-market/internal/kvstore"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/internal/service"
	"github.com/herblink/herb-market/pkg/database"
	"github.com/herblink/herb-market/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "清空现有数据后重建")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "加载配置失败:", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.App.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "初始化日志失败:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.IsDemoMode() {
		seedDemo(cfg, *reset)
		return
	}
	seedDatabase(cfg, *reset)
}

func seedDemo(cfg *config.Config, reset bool) {
	var kv kvstore.Store
	switch cfg.Demo.Backend {
	case "file":
		kv = kvstore.NewFile(cfg.Demo.Dir)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = kvstore.NewRedis(client, "demo:")
	default:
		logger.Warn("memory 后端的数据不跨进程，seed 结果不会保留")
		kv = kvstore.NewMemory()
	}

	store := repository.NewDemoStore(kv)
	bootstrap := service.NewBootstrap(store)
	if reset {
		bootstrap.Reset()
		logger.Info("演示数据已重置", zap.String("backend", cfg.Demo.Backend))
		return
	}
	bootstrap.Initialize()
	logger.Info("演示数据已就绪",
		zap.String("backend", cfg.Demo.Backend),
		zap.Int("products", len(store.Products.All())),
		zap.Int("users", len(store.Users.All())))
}

func seedDatabase(cfg *config.Config, reset bool) {
	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("连接数据库失败", zap.Error(err))
		os.Exit(1)
	}
	if err := repository.InitSchema(db); err != nil {
		logger.Error("建表失败", zap.Error(err))
		os.Exit(1)
	}

	users := repository.NewGormUserRepository(db)
	products := repository.NewGormProductRepository(db)
	ctx := context.Background()

	if reset {
		// 清空业务表后重新灌入种子数据
		for _, table := range []string{"order_items", "orders", "products", "users"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				logger.Error("清空表失败", zap.String("table", table), zap.Error(err))
				os.Exit(1)
			}
		}
	}

	seeded := 0
	for _, u := range service.DefaultUsers() {
		u := u
		if _, err := users.GetByID(ctx, u.ID); err == nil {
			continue
		}
		if err := users.Create(ctx, &u); err != nil {
			logger.Error("写入种子用户失败", zap.String("id", u.ID), zap.Error(err))
			os.Exit(1)
		}
		seeded++
	}
	for _, p := range service.DefaultProducts() {
		p := p
		if _, err := products.GetByID(ctx, p.ID); err == nil {
			continue
		}
		if err := products.Create(ctx, &p); err != nil {
			logger.Error("写入种子商品失败", zap.String("id", p.ID), zap.Error(err))
			os.Exit(1)
		}
		seeded++
	}
	logger.Info("数据库种子数据已就绪", zap.Int("created", seeded))
}
