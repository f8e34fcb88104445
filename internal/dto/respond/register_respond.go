package respond

// RegisterRespond 用户注册响应，不包含密码
// 使用位置:
//   - internal/service/user/service.go: Register
type RegisterRespond struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Mobile   string `json:"mobile"`
}

// UsernameCountRespond 用户名数量响应
type UsernameCountRespond struct {
	Username string `json:"username"`
	Count    int64  `json:"count"`
}

// MobileCountRespond 手机号数量响应
type MobileCountRespond struct {
	Mobile string `json:"mobile"`
	Count  int64  `json:"count"`
}
