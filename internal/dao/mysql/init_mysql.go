// Package mysql 负责建立 MySQL 连接和迁移表结构
package mysql

import (
	"fmt"

	"meiduo_user_server/internal/config" // 配置管理
	"meiduo_user_server/internal/model"  // 数据模型

	mysqldriver "gorm.io/driver/mysql" // GORM MySQL 驱动
	"gorm.io/gorm"                     // GORM ORM 框架
	gormlogger "gorm.io/gorm/logger"
)

// Open 使用 GORM 建立数据库连接
// TranslateError 打开后唯一索引冲突会被翻译成 gorm.ErrDuplicatedKey
func Open(conf config.MysqlConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysqldriver.Open(conf.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql %s:%d/%s: %w", conf.Host, conf.Port, conf.DatabaseName, err)
	}
	return db, nil
}

// Migrate 自动迁移表结构
// 表不存在则创建，字段变更则更新；不会删除已有字段或数据
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserAccount{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
