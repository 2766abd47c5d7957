// Package cache 提供买家可见目录的 Redis 缓存读路径。
// 缓存不可用时直接回源，语义与无缓存一致。
package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/herblink/herb-market/internal/model"
)

const visibleProductsKey = "cache:visible_products"

// CatalogCache 把 VisibleProducts 的计算结果缓存到 Redis。
// 审核通过 / 调价 / 新上架都会改变可见目录，写路径负责调用 Invalidate。
type CatalogCache struct {
	cache *redis.Client
	ttl   time.Duration
	load  func(ctx context.Context) []model.Product

	hits   atomic.Int64
	misses atomic.Int64
}

func NewCatalogCache(cache *redis.Client, ttl time.Duration, load func(ctx context.Context) []model.Product) *CatalogCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CatalogCache{cache: cache, ttl: ttl, load: load}
}

// VisibleProducts 先查缓存，未命中时回源并写缓存
func (c *CatalogCache) VisibleProducts(ctx context.Context) []model.Product {
	if c.cache != nil {
		if data, err := c.cache.Get(ctx, visibleProductsKey).Bytes(); err == nil {
			var out []model.Product
			if uErr := json.Unmarshal(data, &out); uErr == nil {
				c.hits.Add(1)
				return out
			}
		}
	}

	c.misses.Add(1)
	rows := c.load(ctx)
	if c.cache != nil {
		if payload, err := json.Marshal(rows); err == nil {
			_ = c.cache.Set(ctx, visibleProductsKey, payload, c.ttl).Err()
		}
	}
	return rows
}

// Invalidate 丢弃缓存条目
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c.cache != nil {
		_ = c.cache.Del(ctx, visibleProductsKey).Err()
	}
}

// Stats 返回命中/未命中计数（采样值）
func (c *CatalogCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
