package user

import (
	"regexp"

	"meiduo_user_server/internal/validation"
)

// 注册表单的用户提示
// 用户名、密码的长度上下限沿用同一句提示
// 未提交、提交空串、提交 null 分别对应 msgRequired、msgBlank、msgNull
const (
	msgRequired         = "该字段是必填项。"
	msgBlank            = "该字段不能为空。"
	msgNull             = "该字段不能为 null。"
	msgUsernameLength   = "仅允许5-20个字符的用户名"
	msgPasswordLength   = "仅允许8-20个字符的密码"
	msgMobileInvalid    = "手机号码格式错误"
	msgAllowRequired    = "请同意用户协议"
	msgPasswordMismatch = "两次密码不一致"
	msgSmsCodeExpired   = "无效的短信验证码"
	msgSmsCodeWrong     = "短信验证码错误"
)

// allowToken 同意用户协议时 allow 字段必须等于的字面值
const allowToken = "true"

var (
	// mobilePrefixPattern 只锚定开头，11 位之后的多余字符不会被拒绝
	mobilePrefixPattern = regexp.MustCompile(`^1[1-9]\d{9}`)
	mobileStrictPattern = regexp.MustCompile(`^1[1-9]\d{9}$`)
)

// RegisterRules 注册请求的字段规则表
// strictMobile 为 true 时手机号必须恰好 11 位
func RegisterRules(strictMobile bool) validation.Rules {
	mobile := mobilePrefixPattern
	if strictMobile {
		mobile = mobileStrictPattern
	}

	return validation.Rules{
		"username": {
			Required:  true,
			MinLength: 5,
			MaxLength: 20,
			Messages: validation.Messages{
				Required:  msgRequired,
				Blank:     msgBlank,
				Null:      msgNull,
				MinLength: msgUsernameLength,
				MaxLength: msgUsernameLength,
			},
		},
		"password": {
			Required:  true,
			MinLength: 8,
			MaxLength: 20,
			Messages: validation.Messages{
				Required:  msgRequired,
				Blank:     msgBlank,
				Null:      msgNull,
				MinLength: msgPasswordLength,
				MaxLength: msgPasswordLength,
			},
		},
		"password2": {
			Required: true,
			Messages: presenceMessages(),
		},
		"sms_code": {
			Required: true,
			Messages: presenceMessages(),
		},
		"mobile": {
			Required: true,
			Pattern:  mobile,
			Messages: withInvalid(msgMobileInvalid),
		},
		"allow": {
			// 未提交按必填处理，提交了其它值才提示同意协议
			Required: true,
			Equals:   allowToken,
			Messages: withInvalid(msgAllowRequired),
		},
	}
}

// presenceMessages 只带缺失、空串、null 三种提示
func presenceMessages() validation.Messages {
	return validation.Messages{Required: msgRequired, Blank: msgBlank, Null: msgNull}
}

func withInvalid(invalid string) validation.Messages {
	m := presenceMessages()
	m.Invalid = invalid
	return m
}
