package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"meiduo_user_server/internal/infrastructure/logger"
	"meiduo_user_server/internal/validation"
	"meiduo_user_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResponseData 统一响应结构体，所有接口都以 HTTP 200 返回，结果由 Code 区分
// 失败时 Data 固定为 null，前端据此判断是否有数据
type ResponseData struct {
	Code int `json:"code"` // 业务响应状态码
	Msg  any `json:"msg"`  // 提示信息，校验失败时为 字段 -> 消息列表
	Data any `json:"data"` // 数据
}

// writeResponse 以统一结构写出响应
func writeResponse(c *gin.Context, code int, msg any, data any) {
	c.JSON(http.StatusOK, ResponseData{Code: code, Msg: msg, Data: data})
}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, data any) {
	writeResponse(c, errorx.CodeSuccess, "success", data)
}

// HandleError 通用错误处理方法
// 依次识别：校验错误 -> 业务错误 -> 其它系统错误
// 使用示例：
//
//	if err := svc.DoSomething(ctx); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	// 1. 校验错误：按字段返回全部提示
	var validationErrs *validation.Errors
	if errors.As(err, &validationErrs) {
		writeResponse(c, errorx.CodeInvalidParam, validationErrs.Detail(), nil)
		return
	}

	// 2. 面向用户的业务错误：直接返回携带的错误码和消息
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) && isClientError(codeErr.Code) {
		writeResponse(c, codeErr.Code, codeErr.Msg, nil)
		return
	}

	// 3. 数据库、缓存等系统错误：记录日志并返回服务繁忙，内部细节不外泄
	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("request_id", c.GetString(logger.RequestIDKey)),
		zap.Int("code", errorx.GetCode(err)),
		zap.Error(err),
	)
	writeResponse(c, errorx.ErrServerBusy.Code, errorx.ErrServerBusy.Msg, nil)
}

// HandleParamError 处理请求体绑定错误
// 字段类型不对时指出具体字段，其余（JSON 格式错误等）返回通用提示
func HandleParamError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeResponse(c, errorx.CodeInvalidParam, map[string][]string{typeErr.Field: {msgNotAString}}, nil)
		return
	}

	zap.L().Warn("param bind error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	writeResponse(c, errorx.ErrInvalidParam.Code, errorx.ErrInvalidParam.Msg, nil)
}

// isClientError 可以把消息原样返回给前端的错误码
func isClientError(code int) bool {
	switch code {
	case errorx.CodeInvalidParam, errorx.CodeUserExist, errorx.CodeNotFound:
		return true
	}
	return false
}

// msgNotAString 字段不是字符串时的提示
const msgNotAString = "请输入有效的字符串。"
