package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCauseAndCode(t *testing.T) {
	cause := errors.New("duplicate entry")
	err := Wrap(cause, CodeUserExist, "创建用户")

	assert.Equal(t, "创建用户: duplicate entry", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeUserExist, GetCode(fmt.Errorf("service: %w", err)))
}

func TestIsComparesByCode(t *testing.T) {
	err := Wrapf(errors.New("1062"), CodeUserExist, "创建用户 %s", "alice")

	assert.ErrorIs(t, err, ErrUserExist)
	assert.NotErrorIs(t, err, ErrServerBusy)
}

func TestGetCodeDefaultsToServerBusy(t *testing.T) {
	assert.Equal(t, CodeServerBusy, GetCode(errors.New("boom")))
	assert.Equal(t, CodeInvalidParam, GetCode(ErrInvalidParam))
}
