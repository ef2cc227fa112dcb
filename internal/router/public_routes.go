package router

import (
	"yalla-server/internal/handler"
	"yalla-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})
	api.GET("/webinfo", handler.GetWebInfo)
	api.GET("/features", handler.GetFeatureState)

	// 公开内容。详情页带可选认证，用于待审核内容的可见性判断
	api.GET("/cuisines", handler.GetCuisineList)
	api.GET("/restaurants", handler.GetRestaurantList)
	api.GET("/restaurants/search", handler.SearchRestaurants)
	api.GET("/restaurants/:id", middleware.OptionalJWTAuth(), handler.GetRestaurantDetail)
	api.GET("/users/:username", handler.GetUserProfile)
	api.GET("/top-reviewers", handler.GetTopReviewers)
}
