// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"meiduo_user_server/internal/config"                    // 配置管理
	"meiduo_user_server/internal/handler"                   // Handler 聚合对象
	"meiduo_user_server/internal/infrastructure/logger"     // 日志中间件
	"meiduo_user_server/internal/infrastructure/middleware" // 请求 ID、安全头
	"meiduo_user_server/internal/router"                    // 路由注册

	"github.com/gin-contrib/cors" // CORS 跨域中间件
	"github.com/gin-gonic/gin"    // Gin Web 框架
)

// Init 创建并返回配置完成的 Gin 引擎实例
// handlers: 通过依赖注入传入的 handler 聚合对象
// 配置顺序：
//  1. 创建 Gin 引擎（空白，不含默认中间件）
//  2. 注册请求 ID、日志和恢复中间件
//  3. 注册安全头与 CORS
//  4. 注册业务路由
func Init(handlers *handler.Handlers, conf *config.Config) *gin.Engine {
	gin.SetMode(ginMode(conf.MainConfig.Mode))

	// 创建空白 Gin 引擎（不使用 gin.Default() 以便完全控制中间件）
	engine := gin.New()

	// 请求 ID 要在日志之前生成，日志和错误处理都会读取它
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	engine.Use(middleware.Secure(conf.SecurityConfig, gin.Mode() != gin.ReleaseMode))

	// 配置 CORS 跨域规则
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // 允许所有来源（生产环境应指定具体域名）
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", logger.RequestIDKey}
	corsConfig.ExposeHeaders = []string{logger.RequestIDKey}
	engine.Use(cors.New(corsConfig))

	// 创建路由管理器并注册所有业务路由
	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}

// ginMode 将配置中的运行模式映射为 gin 的模式
func ginMode(mode string) string {
	switch mode {
	case "dev", gin.DebugMode:
		return gin.DebugMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
