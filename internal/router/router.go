package router

import (
	"yalla-server/internal/consts"
	"yalla-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制与维护模式中间件
	api.Use(middleware.BodyLimitMiddleware())
	api.Use(middleware.MaintenanceCheck())

	// 认证限流：多个路由复用同一个实例，保持行为一致
	authLimiter := middleware.RateLimitMiddleware(consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)

	registerPublicRoutes(api)
	registerAuthRoutes(api, authLimiter)
	registerUserRoutes(api)
	registerAdminRoutes(api)
}
