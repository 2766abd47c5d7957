package kvstore

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStoreContract(t *testing.T, s Store) {
	t.Helper()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", "v1")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	s.Set("k", "v2")
	v, _ = s.Get("k")
	assert.Equal(t, "v2", v)

	s.Remove("k")
	_, ok = s.Get("k")
	assert.False(t, ok)

	// 删除不存在的 key 不应有副作用
	s.Remove("missing")
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	runStoreContract(t, NewFile(t.TempDir()))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	NewFile(dir).Set("demo_products", `[{"id":"1"}]`)

	v, ok := NewFile(dir).Get("demo_products")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	runStoreContract(t, NewRedis(client, "herb:"))
}

func TestRedisStoreNilClientDegrades(t *testing.T) {
	s := NewRedis(nil, "")
	s.Set("k", "v")
	_, ok := s.Get("k")
	assert.False(t, ok)
	s.Remove("k")
}

func TestRedisStoreUnreachableDegrades(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	s := NewRedis(client, "")
	s.Set("k", "v")
	_, ok := s.Get("k")
	assert.False(t, ok)
}
