// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"meiduo_user_server/internal/dao/mysql/repository"
	"meiduo_user_server/internal/infrastructure/mq"
	"meiduo_user_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过它访问各个 Service
type Services struct {
	User UserService // 用户 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合、注册校验器和事件投递
//  2. 创建各个 Service 实例
//  3. 返回 Services 聚合
func NewServices(repos *repository.Repositories, validator *user.RegistrationValidator, publisher mq.UserEventPublisher) *Services {
	return &Services{
		User: user.NewUserService(repos, validator, publisher),
	}
}
