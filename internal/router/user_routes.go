package router

import (
	"yalla-server/internal/handler"
	"yalla-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	userGroup.Use(middleware.UserStatusCheck())

	userGroup.GET("/me", handler.GetSelfInfo)
	userGroup.POST("/restaurants", handler.SubmitRestaurant)
	userGroup.POST("/restaurants/:id/reviews", handler.SubmitReview)
	userGroup.DELETE("/reviews/:id", handler.DeleteSelfReview)
}
