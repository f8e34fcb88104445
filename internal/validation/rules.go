// Package validation 把按字段配置的规则表交给 go-playground/validator 执行，
// 并把失败结果转换成带分类的字段错误
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// Messages 字段各类失败对应的提示
// 为空的项回退到 validator 的默认翻译
type Messages struct {
	Required  string // 未提交该字段
	Blank     string // 提交了空串（去掉首尾空白后），为空时沿用 Required
	Null      string // 提交了 null，为空时沿用 Required
	MinLength string
	MaxLength string
	Invalid   string // 格式或字面值不符
}

// FieldRule 单个字段的规则
type FieldRule struct {
	Required  bool
	MinLength int            // 按字符计数，0 表示不限制
	MaxLength int            // 按字符计数，0 表示不限制
	Pattern   *regexp.Regexp // 为 nil 时不检查
	Equals    string         // 非空时要求值与之完全相等
	Messages  Messages
}

// Rules 字段 json 名 -> 规则
type Rules map[string]FieldRule

// patternTag 每个带 Pattern 的字段注册独立的 validator 标签
func patternTag(field string) string {
	return "pattern_" + field
}

// tag 生成 validator 标签串，如 "required,min=5,max=20"
func (r FieldRule) tag(field string) string {
	var parts []string
	if r.Required {
		parts = append(parts, "required")
	}
	if r.MinLength > 0 {
		parts = append(parts, "min="+strconv.Itoa(r.MinLength))
	}
	if r.MaxLength > 0 {
		parts = append(parts, "max="+strconv.Itoa(r.MaxLength))
	}
	if r.Pattern != nil {
		parts = append(parts, patternTag(field))
	}
	if r.Equals != "" {
		parts = append(parts, "eq="+r.Equals)
	}
	return strings.Join(parts, ",")
}

// message 根据失败的 validator 标签挑选提示
// required 失败时再按字段的提交情况区分未提交、空串和 null
func (r FieldRule) message(tag string, presence Presence) string {
	switch {
	case tag == "required":
		return r.requiredMessage(presence)
	case tag == "min":
		return r.Messages.MinLength
	case tag == "max":
		return r.Messages.MaxLength
	default:
		return r.Messages.Invalid
	}
}

func (r FieldRule) requiredMessage(presence Presence) string {
	switch {
	case presence == Present && r.Messages.Blank != "":
		return r.Messages.Blank
	case presence == Null && r.Messages.Null != "":
		return r.Messages.Null
	default:
		return r.Messages.Required
	}
}
