package validation

import (
	"fmt"
	"strings"
)

// NonFieldErrors 表单级错误使用的键
const NonFieldErrors = "non_field_errors"

// Kind 校验错误分类
type Kind int

const (
	// KindFormat 单字段格式错误：必填、长度、格式、字面值
	KindFormat Kind = iota + 1
	// KindMismatch 字段之间不一致，如两次密码不同
	KindMismatch
	// KindVerification 依赖外部状态的校验失败，如短信验证码
	KindVerification
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindMismatch:
		return "mismatch"
	case KindVerification:
		return "verification"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Presence 字段在请求体中的提交情况
type Presence int

const (
	// Absent 未提交该字段，直接构造的结构体一律视为未提交
	Absent Presence = iota
	// Present 提交了字符串，可能为空
	Present
	// Null 提交了 null
	Null
)

// PresenceReporter 能区分字段是否提交的请求结构体实现该接口
// 校验器据此在 required 失败时给出 未提交 / 空串 / null 三种提示
type PresenceReporter interface {
	Presence(field string) Presence
}

// FieldError 单条校验错误
type FieldError struct {
	Field   string // 字段的 json 名，表单级错误为 NonFieldErrors
	Kind    Kind
	Message string // 面向用户的提示
}

// Errors 一次校验收集到的全部错误，实现 error 接口
type Errors struct {
	list []FieldError
}

// Add 追加一条错误
func (e *Errors) Add(field string, kind Kind, message string) {
	e.list = append(e.list, FieldError{Field: field, Kind: kind, Message: message})
}

// Empty 是否没有任何错误
func (e *Errors) Empty() bool {
	return e == nil || len(e.list) == 0
}

// Err 没有错误时返回 nil，避免返回包着 nil 指针的 error
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// List 按发现顺序返回全部错误
func (e *Errors) List() []FieldError {
	if e == nil {
		return nil
	}
	return append([]FieldError(nil), e.list...)
}

// Detail 转换为 字段 -> 消息列表，作为接口返回的 msg
func (e *Errors) Detail() map[string][]string {
	detail := make(map[string][]string, len(e.list))
	for _, fe := range e.list {
		detail[fe.Field] = append(detail[fe.Field], fe.Message)
	}
	return detail
}

// Has 是否存在指定字段、指定分类的错误
func (e *Errors) Has(field string, kind Kind) bool {
	for _, fe := range e.List() {
		if fe.Field == field && fe.Kind == kind {
			return true
		}
	}
	return false
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.list))
	for _, fe := range e.list {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
