package router

import (
	"yalla-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	authGroup.Use(authLimiter)

	authGroup.POST("/register", handler.Register)
	authGroup.POST("/login", handler.Login)
}
