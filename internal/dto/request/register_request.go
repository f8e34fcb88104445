package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"meiduo_user_server/internal/validation"
)

// RegisterRequest 用户注册请求
// 使用位置:
//   - internal/handler/user_handler.go: Register
//   - internal/service/user/service.go: Register
//
// password2、sms_code、allow 只用于校验，不会落库
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	SmsCode   string `json:"sms_code"`
	Mobile    string `json:"mobile"`
	Allow     string `json:"allow"`

	// presence 记录请求体里出现过的键，由 UnmarshalJSON 填写
	presence map[string]validation.Presence
}

// UnmarshalJSON 解析请求体并记录每个键的提交情况
// 未提交、提交空串、提交 null 三种情况对应不同的提示
func (r *RegisterRequest) UnmarshalJSON(data []byte) error {
	// plain 不带方法，避免递归调用 UnmarshalJSON
	type plain RegisterRequest

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*r = RegisterRequest(p)
	r.presence = make(map[string]validation.Presence, len(raw))
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			r.presence[key] = validation.Null
			continue
		}
		r.presence[key] = validation.Present
	}
	return nil
}

// Presence 返回字段的提交情况，直接构造的请求视为全部未提交
func (r *RegisterRequest) Presence(field string) validation.Presence {
	return r.presence[field]
}

// Normalize 去掉各字段首尾空白，与表单提交时的文本处理保持一致
func (r *RegisterRequest) Normalize() {
	for _, f := range []*string{&r.Username, &r.Password, &r.Password2, &r.SmsCode, &r.Mobile, &r.Allow} {
		*f = strings.TrimSpace(*f)
	}
}
