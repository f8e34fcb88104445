package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册用户相关路由
// 注册和占用查询都是公开接口，无需认证
func (rt *Router) RegisterUserRoutes(r *gin.Engine) {
	r.POST("/users", rt.handlers.User.Register)
	r.POST("/register", rt.handlers.User.Register) // 兼容旧客户端

	r.GET("/usernames/:username/count", rt.handlers.User.UsernameCount)
	r.GET("/mobiles/:mobile/count", rt.handlers.User.MobileCount)
}
