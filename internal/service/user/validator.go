package user

import (
	"context"

	"meiduo_user_server/internal/dto/request"
	"meiduo_user_server/internal/validation"
)

// SmsCodeLookup 查询手机号当前有效的短信验证码
// 不存在（过期、未发送、手机号不符）时 ok 为 false
type SmsCodeLookup interface {
	CodeForMobile(ctx context.Context, mobile string) (code string, ok bool, err error)
}

// RegistrationValidator 注册请求校验
// 先逐字段检查格式，全部通过后再做跨字段和验证码检查
type RegistrationValidator struct {
	fields *validation.Validator
	codes  SmsCodeLookup
}

// NewRegistrationValidator 创建注册校验器
func NewRegistrationValidator(codes SmsCodeLookup, strictMobile bool) (*RegistrationValidator, error) {
	fields, err := validation.New("zh", request.RegisterRequest{}, RegisterRules(strictMobile))
	if err != nil {
		return nil, err
	}
	return &RegistrationValidator{fields: fields, codes: codes}, nil
}

// Validate 校验已规范化的注册请求
// 校验失败返回 *validation.Errors；读取缓存失败时原样返回缓存错误
func (v *RegistrationValidator) Validate(ctx context.Context, req *request.RegisterRequest) error {
	if errs := v.fields.Validate(req); errs != nil {
		return errs.Err()
	}

	errs := &validation.Errors{}
	if req.Password != req.Password2 {
		errs.Add(validation.NonFieldErrors, validation.KindMismatch, msgPasswordMismatch)
		return errs
	}

	realCode, ok, err := v.codes.CodeForMobile(ctx, req.Mobile)
	if err != nil {
		return err
	}
	if !ok {
		errs.Add(validation.NonFieldErrors, validation.KindVerification, msgSmsCodeExpired)
		return errs
	}
	if req.SmsCode != realCode {
		errs.Add(validation.NonFieldErrors, validation.KindVerification, msgSmsCodeWrong)
		return errs
	}
	return nil
}
