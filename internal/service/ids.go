package service

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// timeID 毫秒时间戳 ID，沿用原始数据格式；同一毫秒内
// 多次调用时递增，保证进程内唯一。
func timeID() string {
	idMu.Lock()
	defer idMu.Unlock()
	n := time.Now().UnixMilli()
	if n <= lastID {
		n = lastID + 1
	}
	lastID = n
	return strconv.FormatInt(n, 10)
}
