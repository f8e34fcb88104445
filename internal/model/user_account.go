// Package model 定义数据库实体模型
package model

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt" // 密码哈希库
	"gorm.io/gorm"
)

// PasswordCost bcrypt 代价因子，启动时由配置覆盖
var PasswordCost = bcrypt.DefaultCost

// ErrPlaintextPassword 试图保存未经哈希的密码
var ErrPlaintextPassword = errors.New("refusing to save a user without a hashed password")

// UserAccount 用户账号
// 对应数据库 tb_users 表，用户名和手机号唯一
type UserAccount struct {
	gorm.Model

	// Username 用户名，5-20 个字符
	Username string `gorm:"column:username;type:varchar(20);uniqueIndex;not null;comment:用户名"`

	// Password bcrypt 哈希后的密码，不存储明文
	Password string `gorm:"column:password;type:varchar(128);not null;comment:密码" json:"-"`

	// Mobile 手机号
	// 校验采用前缀匹配，这里给出比 11 位更宽的列
	Mobile string `gorm:"column:mobile;type:varchar(32);uniqueIndex;not null;comment:手机号"`

	// RawPassword 明文密码（不存入数据库）
	// 在 BeforeSave 中加密后清空
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (UserAccount) TableName() string {
	return "tb_users"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 调用方只需设置 RawPassword，写库时一定是哈希
func (u *UserAccount) BeforeSave(tx *gorm.DB) error {
	return u.HashRawPassword()
}

// HashRawPassword 将 RawPassword 加密写入 Password 并清空明文
// 没有明文也没有已哈希的密码时返回 ErrPlaintextPassword
func (u *UserAccount) HashRawPassword() error {
	if u.RawPassword != "" {
		// bcrypt 每次生成随机盐，同一密码两次哈希结果不同
		hash, err := bcrypt.GenerateFromPassword(passwordDigest(u.RawPassword), PasswordCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
		return nil
	}
	if !isBcryptHash(u.Password) {
		return ErrPlaintextPassword
	}
	return nil
}

// CheckPassword 校验明文密码是否与哈希一致
func (u *UserAccount) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), passwordDigest(plaintext)) == nil
}

// passwordDigest 哈希前先做 SHA-256 并 base64 编码
// bcrypt 最多接受 72 字节，20 个 4 字节字符的密码就有 80 字节；
// 摘要固定 44 字节且不含 NUL，任意长度的密码都能完整参与哈希
func passwordDigest(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func isBcryptHash(s string) bool {
	if !strings.HasPrefix(s, "$2") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
