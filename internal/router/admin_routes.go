package router

import (
	adminhandler "yalla-server/internal/handler/admin"
	"yalla-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.UserStatusCheck())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", adminhandler.GetServerStats)

	adminGroup.GET("/settings", adminhandler.GetSettings)
	adminGroup.PATCH("/settings", adminhandler.UpdateSettings)
	adminGroup.POST("/features/toggle", adminhandler.ToggleFeature)

	adminGroup.GET("/restaurants/pending", adminhandler.GetPendingRestaurants)
	adminGroup.POST("/restaurants/:id/approve", adminhandler.ApproveRestaurant)
	adminGroup.POST("/restaurants/:id/reject", adminhandler.RejectRestaurant)
	adminGroup.PATCH("/restaurants/:id/featured", adminhandler.SetRestaurantFeatured)
	adminGroup.PATCH("/restaurants/:id/promoted", adminhandler.SetRestaurantPromoted)
	adminGroup.DELETE("/restaurants/batch", adminhandler.BulkDeleteRestaurants)

	adminGroup.GET("/reviews/pending", adminhandler.GetPendingReviews)
	adminGroup.POST("/reviews/:id/approve", adminhandler.ApproveReview)
	adminGroup.DELETE("/reviews/batch", adminhandler.BulkDeleteReviews)
	adminGroup.DELETE("/reviews/:id", adminhandler.DeleteReview)

	adminGroup.GET("/users", adminhandler.GetUserList)
	adminGroup.GET("/users/:id", adminhandler.GetUserDetail)
	adminGroup.POST("/users/:id/ban", adminhandler.BanUser)
	adminGroup.POST("/users/:id/unban", adminhandler.UnbanUser)
	adminGroup.POST("/users/:id/badges", adminhandler.AssignBadge)
	adminGroup.DELETE("/users/:id/badges", adminhandler.RemoveBadge)

	adminGroup.GET("/badges", adminhandler.GetBadgeList)
	adminGroup.POST("/badges", adminhandler.CreateBadge)
}
