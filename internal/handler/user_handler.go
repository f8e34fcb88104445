// Package handler 提供 HTTP 请求处理器
// 本文件处理用户相关的 API 请求
package handler

import (
	"meiduo_user_server/internal/dto/request"
	"meiduo_user_server/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
// 通过构造函数注入 UserService，遵循依赖倒置原则
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register 用户注册
// POST /users
// 请求体: request.RegisterRequest
// 响应: respond.RegisterRespond (id, username, mobile)
func (h *UserHandler) Register(c *gin.Context) {
	// 1. 绑定请求参数，格式校验交给 Service 层统一处理
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	// 2. 调用 Service 层处理业务逻辑
	data, err := h.userSvc.Register(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 3. 返回成功响应
	HandleSuccess(c, data)
}

// UsernameCount 查询用户名是否已被占用
// GET /usernames/:username/count
// 响应: respond.UsernameCountRespond
func (h *UserHandler) UsernameCount(c *gin.Context) {
	data, err := h.userSvc.CountUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// MobileCount 查询手机号是否已被占用
// GET /mobiles/:mobile/count
// 响应: respond.MobileCountRespond
func (h *UserHandler) MobileCount(c *gin.Context) {
	data, err := h.userSvc.CountMobile(c.Request.Context(), c.Param("mobile"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
