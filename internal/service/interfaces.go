// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
package service

import (
	"context"

	"meiduo_user_server/internal/dto/request"
	"meiduo_user_server/internal/dto/respond"
)

// UserService 用户业务接口
// 处理用户注册以及用户名、手机号占用查询
type UserService interface {
	// Register 用户注册
	// 校验失败返回 *validation.Errors，唯一约束冲突返回 errorx.ErrUserExist
	Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error)
	// CountUsername 统计用户名已注册数量
	CountUsername(ctx context.Context, username string) (*respond.UsernameCountRespond, error)
	// CountMobile 统计手机号已注册数量
	CountMobile(ctx context.Context, mobile string) (*respond.MobileCountRespond, error)
}
