package kvstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/herblink/herb-market/pkg/logger"
)

// File 目录文件存储：一个 key 一个文件，进程重启后数据仍在。
// 目录不可写时按合约退化为空操作。
type File struct {
	dir string
	mu  sync.RWMutex
}

func NewFile(dir string) *File {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("kvstore: create dir failed, store degrades to no-op",
			zap.String("dir", dir), zap.Error(err))
	}
	return &File{dir: dir}
}

func (f *File) path(key string) string {
	// key 只来自固定常量，这里仅防御路径分隔符
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, safe+".json")
}

func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("kvstore: read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return string(data), true
}

func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.WriteFile(f.path(key), []byte(value), 0o644); err != nil {
		logger.Warn("kvstore: write failed", zap.String("key", key), zap.Error(err))
	}
}

func (f *File) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		logger.Warn("kvstore: remove failed", zap.String("key", key), zap.Error(err))
	}
}
