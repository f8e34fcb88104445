package repository

import (
	"context"
	"sync"
	"time"

	"meiduo_user_server/internal/model"
	"meiduo_user_server/pkg/errorx"

	"gorm.io/gorm"
)

type memoryUserRepository struct {
	mu         sync.RWMutex
	nextID     uint
	users      map[uint]model.UserAccount
	byUsername map[string]uint
	byMobile   map[string]uint
}

// NewMemoryUserRepository 创建内存用户 Repository
// 与数据库实现一样保证用户名、手机号唯一，并在写入前哈希密码
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:      make(map[uint]model.UserAccount),
		byUsername: make(map[string]uint),
		byMobile:   make(map[string]uint),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *model.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return wrapDBError(gorm.ErrDuplicatedKey, "创建用户")
	}
	if _, ok := r.byMobile[user.Mobile]; ok {
		return wrapDBError(gorm.ErrDuplicatedKey, "创建用户")
	}
	if err := user.HashRawPassword(); err != nil {
		return errorx.Wrap(err, errorx.CodeDBError, "创建用户")
	}

	r.nextID++
	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = *user
	r.byUsername[user.Username] = user.ID
	r.byMobile[user.Mobile] = user.ID
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uint) (*model.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, wrapDBError(gorm.ErrRecordNotFound, "查询用户")
	}
	return &user, nil
}

func (r *memoryUserRepository) CountByUsername(_ context.Context, username string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byUsername[username]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r *memoryUserRepository) CountByMobile(_ context.Context, mobile string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byMobile[mobile]; ok {
		return 1, nil
	}
	return 0, nil
}
