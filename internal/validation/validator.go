package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// Validator 针对某一种请求结构体执行规则表
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
	rules    Rules
	target   reflect.Type
}

// New 为 target 的结构体类型构建校验器
// locale 为 "zh" 或 "en"，决定未配置提示时的默认翻译语言
// rules 的键必须是 target 字段的 json 名
func New(locale string, target any, rules Rules) (*Validator, error) {
	typ := reflect.TypeOf(target)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("validation target must be a struct, got %s", typ)
	}

	v := validator.New()
	// 错误中的字段名使用 json tag（如 sms_code），与前端一致
	v.RegisterTagNameFunc(jsonName)

	trans, err := newTranslator(v, locale)
	if err != nil {
		return nil, err
	}

	byGoName := make(map[string]string, len(rules))
	for i := 0; i < typ.NumField(); i++ {
		fld := typ.Field(i)
		name := jsonName(fld)
		rule, ok := rules[name]
		if !ok {
			continue
		}
		byGoName[fld.Name] = rule.tag(name)
		if rule.Pattern != nil {
			if err := registerPattern(v, trans, name, rule); err != nil {
				return nil, err
			}
		}
	}
	for name := range rules {
		if !hasJSONField(typ, name) {
			return nil, fmt.Errorf("rule for unknown field %q on %s", name, typ)
		}
	}

	v.RegisterStructValidationMapRules(byGoName, reflect.New(typ).Elem().Interface())

	return &Validator{validate: v, trans: trans, rules: rules, target: typ}, nil
}

// Validate 校验 obj 的全部字段，每个字段独立检查，返回所有字段错误
// 通过时返回 nil
func (v *Validator) Validate(obj any) *Errors {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	errs := &Errors{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add(NonFieldErrors, KindFormat, err.Error())
		return errs
	}
	reporter, _ := obj.(PresenceReporter)
	for _, fe := range validationErrs {
		presence := Absent
		if reporter != nil {
			presence = reporter.Presence(fe.Field())
		}
		msg := v.rules[fe.Field()].message(fe.Tag(), presence)
		if msg == "" {
			msg = fe.Translate(v.trans)
		}
		errs.Add(fe.Field(), KindFormat, msg)
	}
	return errs
}

// newTranslator 初始化翻译器并注册默认翻译
// validator 默认的错误提示是英文，规则表未给出提示时使用翻译后的默认提示
func newTranslator(v *validator.Validate, locale string) (ut.Translator, error) {
	zhT := zh.New()
	enT := en.New()
	// 第一个参数是找不到匹配语言时的备用语言
	uni := ut.New(enT, zhT, enT)

	trans, ok := uni.GetTranslator(locale)
	if !ok {
		return nil, fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	var err error
	switch locale {
	case "zh":
		err = zh_translations.RegisterDefaultTranslations(v, trans)
	default:
		err = en_translations.RegisterDefaultTranslations(v, trans)
	}
	if err != nil {
		return nil, fmt.Errorf("register %s translations: %w", locale, err)
	}
	return trans, nil
}

// registerPattern 为字段注册正则标签及其默认翻译
// 使用 MatchString，锚点完全由规则里的正则决定
func registerPattern(v *validator.Validate, trans ut.Translator, field string, rule FieldRule) error {
	tag := patternTag(field)
	re := rule.Pattern
	if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register %s: %w", tag, err)
	}

	text := "{0} format is invalid"
	if trans.Locale() == "zh" {
		text = "{0}格式不正确"
	}
	return v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}

// jsonName 取字段的 json 名，忽略 ",omitempty" 之类的选项
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func hasJSONField(typ reflect.Type, name string) bool {
	for i := 0; i < typ.NumField(); i++ {
		if jsonName(typ.Field(i)) == name {
			return true
		}
	}
	return false
}
