package redis

// smsCodePrefix 短信验证码键前缀，与发送流程约定
const smsCodePrefix = "sms_"

// smsCodeKey 返回手机号对应的验证码键，如 sms_13912345678
func smsCodeKey(mobile string) string {
	return smsCodePrefix + mobile
}
