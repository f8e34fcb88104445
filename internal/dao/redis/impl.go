package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"meiduo_user_server/pkg/errorx"
)

// RedisCache CacheService 的 Redis 实现
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache 创建 Redis 缓存实例
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set 设置键值对并指定过期时间
func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// Lookup 获取键对应的值
// 验证码可能以任意字节写入，这里按文本返回
func (r *RedisCache) Lookup(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, true, nil
}

var _ CacheService = (*RedisCache)(nil)
