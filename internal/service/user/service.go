package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	"meiduo_user_server/internal/dao/mysql/repository"
	"meiduo_user_server/internal/dto/request"
	"meiduo_user_server/internal/dto/respond"
	"meiduo_user_server/internal/infrastructure/mq"
	"meiduo_user_server/internal/model"
)

// userService 用户业务逻辑实现
// 通过构造函数注入 Repository、校验器和事件投递，不使用全局连接
type userService struct {
	repos     *repository.Repositories
	validator *RegistrationValidator
	publisher mq.UserEventPublisher
	now       func() time.Time
}

// NewUserService 构造函数，注入所有依赖
func NewUserService(repos *repository.Repositories, validator *RegistrationValidator, publisher mq.UserEventPublisher) *userService {
	if publisher == nil {
		publisher = mq.NoopPublisher{}
	}
	return &userService{
		repos:     repos,
		validator: validator,
		publisher: publisher,
		now:       time.Now,
	}
}

// Register 注册
// 校验全部通过后才写库；password2、sms_code、allow 不落库
// 用户名或手机号冲突由数据层报告，错误原样返回
func (u *userService) Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error) {
	req.Normalize()
	if err := u.validator.Validate(ctx, &req); err != nil {
		return nil, err
	}

	newUser := &model.UserAccount{
		Username:    req.Username,
		Mobile:      req.Mobile,
		RawPassword: req.Password,
	}
	if err := u.repos.User.Create(ctx, newUser); err != nil {
		return nil, err
	}
	zap.L().Info("user registered", zap.Uint("id", newUser.ID), zap.String("username", newUser.Username))

	event := mq.UserRegisteredEvent{
		ID:           newUser.ID,
		Username:     newUser.Username,
		Mobile:       newUser.Mobile,
		RegisteredAt: u.now(),
	}
	// 账号已经提交，投递失败只记录日志
	if err := u.publisher.PublishUserRegistered(ctx, event); err != nil {
		zap.L().Error("publish user registered event", zap.Uint("id", newUser.ID), zap.Error(err))
	}

	return &respond.RegisterRespond{
		ID:       newUser.ID,
		Username: newUser.Username,
		Mobile:   newUser.Mobile,
	}, nil
}

// CountUsername 统计用户名数量，前端据此提示用户名是否已被占用
func (u *userService) CountUsername(ctx context.Context, username string) (*respond.UsernameCountRespond, error) {
	count, err := u.repos.User.CountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &respond.UsernameCountRespond{Username: username, Count: count}, nil
}

// CountMobile 统计手机号数量
func (u *userService) CountMobile(ctx context.Context, mobile string) (*respond.MobileCountRespond, error) {
	count, err := u.repos.User.CountByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	return &respond.MobileCountRespond{Mobile: mobile, Count: count}, nil
}
