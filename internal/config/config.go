// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
	"golang.org/x/crypto/bcrypt"
)

// MainConfig 主配置，包含应用基本信息
// 为什么：监听地址和运行模式决定 gin 模式与日志输出目标，启动时最先读取
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Host    string `toml:"host"`    // 服务器监听地址，如 "0.0.0.0"
	Port    int    `toml:"port"`    // 服务器监听端口，如 8000
	Mode    string `toml:"mode"`    // 运行模式："dev" 或 "release"
}

// MysqlConfig MySQL 数据库连接配置
type MysqlConfig struct {
	Host         string `toml:"host"`         // MySQL 服务器地址
	Port         int    `toml:"port"`         // MySQL 端口，默认 3306
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
}

// DSN 构建 MySQL 连接字符串
// 格式：user:password@tcp(host:port)/database?params
// 为什么：utf8mb4 才能存下 emoji 用户名，parseTime 让 DATETIME 直接扫描成 time.Time
func (c MysqlConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DatabaseName)
}

// RedisConfig Redis 连接配置
// 短信验证码由发送流程写入 VerifyDb，本服务只读
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	VerifyDb int    `toml:"verifyDb"` // 验证码所在的数据库编号
	PoolSize int    `toml:"poolSize"` // 连接池最大连接数
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
// 字段为零值时由 logger 包补默认文件名和级别
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// KafkaConfig 注册事件投递配置
// 为什么：注册事件只是通知下游，默认关闭，本地开发不需要起 Kafka
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"` // "kafka" 投递注册事件，其他值不投递
	HostPort    string        `toml:"hostPort"`    // Kafka 服务器地址，如 "localhost:9092"
	UserTopic   string        `toml:"userTopic"`   // 用户注册事件主题
	Timeout     time.Duration `toml:"timeout"`     // 写超时（秒）
}

// SecurityConfig HTTP 安全头与 TLS 重定向配置
type SecurityConfig struct {
	SSLRedirect bool   `toml:"sslRedirect"` // 是否将 HTTP 重定向到 HTTPS（由 Nginx 终止 TLS 时关闭）
	SSLHost     string `toml:"sslHost"`     // 重定向目标主机，为空时使用请求的 Host
}

// ValidationConfig 注册字段校验的可选项
type ValidationConfig struct {
	// StrictMobile 为 true 时手机号必须整串匹配 11 位，默认保持前缀匹配
	StrictMobile bool `toml:"strictMobile"`
}

// PasswordConfig 密码哈希配置
// 为什么：代价因子越高越难暴力破解，但每次注册耗时也越长，部署时按机器性能调整
type PasswordConfig struct {
	BcryptCost int `toml:"bcryptCost"` // bcrypt 代价因子，范围 4-31
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig       `toml:"mainConfig"`       // 主配置
	MysqlConfig      `toml:"mysqlConfig"`      // MySQL 配置
	RedisConfig      `toml:"redisConfig"`      // Redis 配置（验证码库）
	LogConfig        `toml:"logConfig"`        // 日志配置
	KafkaConfig      `toml:"kafkaConfig"`      // Kafka 配置
	SecurityConfig   `toml:"securityConfig"`   // 安全头配置
	ValidationConfig `toml:"validationConfig"` // 字段校验配置
	PasswordConfig   `toml:"passwordConfig"`   // 密码哈希配置
}

// config 全局配置单例，延迟加载
var config *Config

// searchPaths 候选配置文件路径（优先加载本地配置）
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml", // 从子目录运行时的路径
	"../../configs/config.toml",
}

// Default 返回填充了默认值的配置
// 为什么：配置文件只需写与默认值不同的项，缺失的段落也能正常启动
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "meiduo_user_server",
			Host:    "0.0.0.0",
			Port:    8000,
			Mode:    "dev",
		},
		MysqlConfig: MysqlConfig{
			Host:         "127.0.0.1",
			Port:         3306,
			User:         "root",
			DatabaseName: "meiduo_mall",
		},
		RedisConfig: RedisConfig{
			Host:     "127.0.0.1",
			Port:     6379,
			VerifyDb: 2,
			PoolSize: 50,
		},
		LogConfig: LogConfig{
			LogPath:    "logs",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Level:      "info",
		},
		KafkaConfig: KafkaConfig{
			MessageMode: "none",
			HostPort:    "127.0.0.1:9092",
			UserTopic:   "user_registered",
			Timeout:     1,
		},
		PasswordConfig: PasswordConfig{
			BcryptCost: bcrypt.DefaultCost,
		},
	}
}

// Load 从指定路径加载配置，未出现在文件中的字段保留默认值
func Load(path string) (*Config, error) {
	// 先填默认值再解码，toml 只覆盖文件里出现的字段
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	// 解码成功不代表取值合法，端口和代价因子越界要在启动时暴露
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig() (*Config, error) {
	for _, path := range searchPaths {
		if conf, err := Load(path); err == nil {
			return conf, nil
		}
	}
	return nil, fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，找不到时使用默认值
func GetConfig() *Config {
	if config == nil {
		conf, err := LoadConfig()
		if err != nil {
			// 找不到配置文件时用默认值启动，方便本地直接运行
			conf = Default()
		}
		config = conf
	}
	return config
}

// SetConfig 替换全局配置，serve 命令通过 --config 指定文件时使用
func SetConfig(conf *Config) {
	config = conf
}

// validate 检查解码后的取值范围
// 为什么：bcrypt 代价因子越界时 GenerateFromPassword 才报错，那时已经在处理请求了
func (c *Config) validate() error {
	if c.MainConfig.Port <= 0 || c.MainConfig.Port > 65535 {
		return fmt.Errorf("mainConfig.port out of range: %d", c.MainConfig.Port)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("passwordConfig.bcryptCost must be within [%d,%d], got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}
