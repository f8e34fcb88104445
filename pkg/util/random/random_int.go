package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GetRandomInt 生成指定位数的安全随机数字，首位不为 0
func GetRandomInt(length int) int {
	// 计算范围：例如 length=6 时，范围是 100000-999999
	min := int64(1)
	for i := 1; i < length; i++ {
		min *= 10
	}
	max := min * 10

	// 生成 [min, max) 范围的随机数
	rangeSize := big.NewInt(max - min)
	n, err := rand.Int(rand.Reader, rangeSize)
	if err != nil {
		return int(min) // fallback
	}
	return int(n.Int64() + min)
}

// GetSmsCode 生成指定位数的数字验证码
func GetSmsCode(length int) string {
	return fmt.Sprintf("%0*d", length, GetRandomInt(length))
}
