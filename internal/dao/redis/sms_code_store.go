package redis

import (
	"context"
	"time"
)

// SmsCodeStore 按手机号读写短信验证码
// 注册流程只通过 CodeForMobile 读取；Issue 仅供本地调试写入
type SmsCodeStore struct {
	cache CacheService
}

// NewSmsCodeStore 创建验证码存取实例
func NewSmsCodeStore(cache CacheService) *SmsCodeStore {
	return &SmsCodeStore{cache: cache}
}

// CodeForMobile 查询手机号当前有效的验证码
// 过期、从未发送或手机号不匹配时 ok 为 false
func (s *SmsCodeStore) CodeForMobile(ctx context.Context, mobile string) (code string, ok bool, err error) {
	return s.cache.Lookup(ctx, smsCodeKey(mobile))
}

// Issue 写入验证码并设置有效期
func (s *SmsCodeStore) Issue(ctx context.Context, mobile, code string, ttl time.Duration) error {
	return s.cache.Set(ctx, smsCodeKey(mobile), code, ttl)
}
