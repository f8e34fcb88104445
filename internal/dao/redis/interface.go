// Package redis 定义缓存服务接口
// Service 层依赖接口而非具体 Redis 实现
package redis

import (
	"context"
	"time"
)

// CacheService 缓存服务接口
type CacheService interface {
	// Set 设置键值对并指定过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Lookup 获取键对应的值，键不存在时 found 为 false
	Lookup(ctx context.Context, key string) (value string, found bool, err error)
}
