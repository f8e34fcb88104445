// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
package repository

import (
	"context"

	"meiduo_user_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
// 用户名、手机号的唯一性由实现保证，冲突时返回 CodeUserExist
type UserRepository interface {
	// Create 创建用户，写入前必须完成密码哈希
	Create(ctx context.Context, user *model.UserAccount) error
	// FindByID 根据主键查找用户
	FindByID(ctx context.Context, id uint) (*model.UserAccount, error)
	// CountByUsername 统计使用该用户名的账号数
	CountByUsername(ctx context.Context, username string) (int64, error)
	// CountByMobile 统计使用该手机号的账号数
	CountByMobile(ctx context.Context, mobile string) (int64, error)
}

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	User UserRepository
}

// NewRepositories 基于 GORM 创建 Repository 聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User: NewUserRepository(db),
	}
}

// NewMemoryRepositories 创建内存实现的 Repository 聚合，用于本地调试和测试
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		User: NewMemoryUserRepository(),
	}
}
