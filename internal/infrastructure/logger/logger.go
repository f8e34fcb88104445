// Package logger 基于 zap 构建全局日志，并提供 gin 的请求日志与 panic 恢复中间件
package logger

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"meiduo_user_server/internal/config"
	"meiduo_user_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RequestIDKey gin 上下文中保存请求 ID 的键，由 middleware.RequestID 写入
const RequestIDKey = "X-Request-ID"

// Init 根据配置构建 Logger 并替换 zap 全局实例
// mode 为 "dev" 或 gin.DebugMode 时同时输出到控制台
// 为什么：各层都通过 zap.L() 打日志，启动时替换一次即可，不必层层传递 Logger
func Init(cfg *config.LogConfig, mode string) error {
	lg, err := New(cfg, mode)
	if err != nil {
		return err
	}
	// 替换之后，其他包里的 zap.L() 拿到的就是这里配置好的实例
	zap.ReplaceGlobals(lg)
	return nil
}

// New 构建 Logger，不修改全局状态
// 为什么：测试需要独立的 Logger 实例，不能互相覆盖全局日志
func New(cfg *config.LogConfig, mode string) (*zap.Logger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("logger.New received nil config")
	}

	// 1. 确定日志文件路径
	// 只在局部变量上补默认值，不改调用方传进来的配置
	fileName := cfg.FileName
	if fileName == "" {
		fileName = "app.log"
	}
	// fileName 为相对路径时挂到 LogPath 目录下
	if cfg.LogPath != "" && !filepath.IsAbs(fileName) {
		fileName = filepath.Join(cfg.LogPath, fileName)
	}
	levelText := cfg.Level
	if levelText == "" {
		levelText = "info"
	}

	// 2. 解析日志级别
	// 把配置里的 "info"、"debug" 等字符串转成 zap 的级别类型，写错时启动直接失败
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", levelText, err)
	}

	// 3. 文件输出的 Core，所有模式都有
	// 为什么：生产环境只看文件，日志收集系统按 JSON 解析
	fileCore := zapcore.NewCore(getEncoder(), getLogWriter(fileName, cfg), level)

	core := fileCore
	if mode == "dev" || mode == gin.DebugMode {
		// 4. 开发模式：文件 + 控制台，控制台使用更易读的 Console 格式
		// 为什么：本地调试时直接看终端，JSON 不方便肉眼阅读
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zapcore.DebugLevel)
		// NewTee 把同一条日志同时分发给两个 Core
		core = zapcore.NewTee(fileCore, consoleCore)
	}

	// zap.AddCaller 在日志里带上调用处的文件名和行号，方便定位
	return zap.New(core, zap.AddCaller()), nil
}

// getLogWriter 使用 lumberjack 实现日志切割
// 为什么：单个日志文件无限增长会占满磁盘，按大小切分并只保留最近的若干份
func getLogWriter(filename string, cfg *config.LogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.MaxSize,    // MB
		MaxBackups: cfg.MaxBackups, // 个
		MaxAge:     cfg.MaxAge,     // 天
	})
}

// getEncoder 文件日志使用 JSON 格式，便于日志收集系统解析
func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"                          // 时间字段名
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder   // 如 2024-01-01T12:00:00.000+0800
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder // INFO、ERROR 大写
	return zapcore.NewJSONEncoder(encoderConfig)
}

// GinLogger 使用 zap 记录每个 HTTP 请求
// 为什么：gin 自带的 Logger 格式固定，接不进 zap 的文件和切割
// 注册请求的 body 含明文密码，这里只记录路径和查询串
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 请求进入时记下时间，用来算耗时
		start := time.Now()

		// c.Next 先执行后面的中间件和 handler，返回时响应已经写好
		c.Next()

		// 此时才能拿到 handler 设置的状态码
		zap.L().Info("http request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Duration("cost", time.Since(start)),
			// handler 里 c.Error 挂上的内部错误，不返回前端但要留档
			zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
		)
	}
}

// GinRecovery 捕获 panic 并记录现场，客户端断开时不再写响应
// 为什么：单个请求 panic 不能拖垮整个进程，同时要把堆栈留在日志里
func GinRecovery(stack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			// 1. 客户端已断开（broken pipe）时写响应没有意义，只记日志
			var brokenPipe bool
			if err, ok := rec.(error); ok {
				brokenPipe = isBrokenPipeError(err)
			}

			// 2. 转储请求用于排查，只转储请求头，body 里可能有密码
			httpRequest, _ := httputil.DumpRequest(c.Request, false)
			fields := []zap.Field{
				zap.Any("error", rec),
				zap.String("request", string(httpRequest)),
				zap.String("request_id", c.GetString(RequestIDKey)),
			}

			if brokenPipe {
				zap.L().Error("broken pipe", append(fields, zap.String("path", c.Request.URL.Path))...)
				_ = c.Error(rec.(error))
				c.Abort()
				return
			}

			// 3. 需要时附上堆栈，定位 panic 发生的位置
			if stack {
				fields = append(fields, zap.String("stack", string(debug.Stack())))
			}
			zap.L().Error("[Recovery from panic]", fields...)
			// 4. 返回统一的"服务繁忙"，不向前端暴露 panic 内容
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code": errorx.ErrServerBusy.Code,
				"msg":  errorx.ErrServerBusy.Msg,
				"data": nil,
			})
		}()
		c.Next()
	}
}

// isBrokenPipeError 判断是否是客户端断开连接导致的错误
// 先按 net.OpError 里的系统调用错误判断，拿不到时退回字符串匹配
func isBrokenPipeError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var syscallErr *os.SyscallError
		if errors.As(opErr.Err, &syscallErr) {
			msg := strings.ToLower(syscallErr.Error())
			return strings.Contains(msg, "broken pipe") ||
				strings.Contains(msg, "connection reset by peer")
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer")
}
