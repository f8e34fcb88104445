package repository

import (
	"errors"

	"meiduo_user_server/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - ErrDuplicatedKey  -> CodeUserExist
//   - 其他错误          -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errorx.Wrap(err, errorx.CodeUserExist, errorx.ErrUserExist.Msg)
	default:
		return errorx.Wrap(err, errorx.CodeDBError, msg)
	}
}
