package constants

const (
	SMS_CODE_LENGTH    = 6   // 短信验证码位数
	SMS_CODE_EXPIRES   = 300 // 短信验证码有效期（秒）
	REDIS_PING_TIMEOUT = 5   // 启动时检查 Redis 连通性的超时（秒）
	SHUTDOWN_TIMEOUT   = 10  // 优雅关闭等待时间（秒）
)
