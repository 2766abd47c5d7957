package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/herblink/herb-market/pkg/logger"
)

// Redis go-redis 存储，多实例共享一份演示数据。
// client 为 nil 或 Redis 不可达时按合约退化。
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string { return r.prefix + key }

func (r *Redis) Get(key string) (string, bool) {
	if r.client == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("kvstore: redis get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (r *Redis) Set(key, value string) {
	if r.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		logger.Warn("kvstore: redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Remove(key string) {
	if r.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		logger.Warn("kvstore: redis del failed", zap.String("key", key), zap.Error(err))
	}
}
