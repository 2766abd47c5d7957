package repository

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/herblink/herb-market/internal/kvstore"
	"github.com/herblink/herb-market/pkg/logger"
)

// Collection 绑定到单个存储键的 JSON 数组集合。
// 写入语义是整集合覆盖，没有局部合并；读到缺失或损坏的数据时返回空集合。
type Collection[T any] struct {
	store kvstore.Store
	key   string
}

func NewCollection[T any](store kvstore.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// All 反序列化整个集合；不存在或 JSON 损坏时返回空切片
func (c *Collection[T]) All() []T {
	raw, ok := c.store.Get(c.key)
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("collection: malformed data, returning empty",
			zap.String("key", c.key), zap.Error(err))
		return nil
	}
	return items
}

// Replace 序列化并整体覆盖存储的集合
func (c *Collection[T]) Replace(items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		logger.Warn("collection: marshal failed, write dropped",
			zap.String("key", c.key), zap.Error(err))
		return
	}
	c.store.Set(c.key, string(data))
}

// Append 读-改-写追加一条记录
func (c *Collection[T]) Append(item T) {
	c.Replace(append(c.All(), item))
}

// Object 绑定到单个存储键的单对象（当前用户指针用）
type Object[T any] struct {
	store kvstore.Store
	key   string
}

func NewObject[T any](store kvstore.Store, key string) *Object[T] {
	return &Object[T]{store: store, key: key}
}

// Get 返回存储的对象，不存在或损坏时返回 nil
func (o *Object[T]) Get() *T {
	raw, ok := o.store.Get(o.key)
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warn("object: malformed data", zap.String("key", o.key), zap.Error(err))
		return nil
	}
	return &v
}

// Set 写入对象；传 nil 则删除键
func (o *Object[T]) Set(v *T) {
	if v == nil {
		o.store.Remove(o.key)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("object: marshal failed", zap.String("key", o.key), zap.Error(err))
		return
	}
	o.store.Set(o.key, string(data))
}
