// Package kvstore 提供演示模式的持久化键值存储。
// 合约：任何底层失败（存储不可用、配额、序列化）都不向调用方抛出，
// 读退化为"不存在"，写退化为空操作，保证上层只会回到空/默认状态。
package kvstore

// Store 键值存储适配器
type Store interface {
	// Get 返回 key 对应的值；不存在或读取失败时 ok 为 false
	Get(key string) (value string, ok bool)
	// Set 覆盖写入；失败时静默丢弃（仅记录日志）
	Set(key, value string)
	// Remove 删除 key；key 不存在或失败时为空操作
	Remove(key string)
}
