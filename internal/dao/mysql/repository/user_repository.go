package repository

import (
	"context"

	"meiduo_user_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 创建用户
// model.UserAccount 的 BeforeSave 钩子负责把 RawPassword 换成哈希
func (r *userRepository) Create(ctx context.Context, user *model.UserAccount) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// FindByID 按主键查找用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.UserAccount, error) {
	var user model.UserAccount
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapDBError(err, "查询用户")
	}
	return &user, nil
}

// CountByUsername 统计用户名数量
func (r *userRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserAccount{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return 0, wrapDBError(err, "统计用户名")
	}
	return count, nil
}

// CountByMobile 统计手机号数量
func (r *userRepository) CountByMobile(ctx context.Context, mobile string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserAccount{}).Where("mobile = ?", mobile).Count(&count).Error
	if err != nil {
		return 0, wrapDBError(err, "统计手机号")
	}
	return count, nil
}
