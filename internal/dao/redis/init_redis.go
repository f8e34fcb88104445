// Package redis 提供 Redis 缓存操作的封装
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"context"
	"fmt"
	"strconv"

	"meiduo_user_server/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewClient 根据配置创建验证码库的 Redis 客户端并检查连通性
// 客户端由调用方持有并负责关闭
func NewClient(ctx context.Context, conf config.RedisConfig) (*redis.Client, error) {
	addr := conf.Host + ":" + strconv.Itoa(conf.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.VerifyDb,
		PoolSize: conf.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s db=%d: %w", addr, conf.VerifyDb, err)
	}
	return client, nil
}
