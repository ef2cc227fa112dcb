package admin

import (
	"net/http"
	"strconv"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPendingRestaurants 待审核餐厅队列
func GetPendingRestaurants(c *gin.Context) {
	restaurants, err := service.ListPendingRestaurants()
	if err != nil {
		writeServiceError(c, err, "获取待审核餐厅失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": restaurants})
}

// GetPendingReviews 待审核评价队列
func GetPendingReviews(c *gin.Context) {
	reviews, err := service.ListPendingReviews()
	if err != nil {
		writeServiceError(c, err, "获取待审核评价失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reviews})
}

func ApproveRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的餐厅ID"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionApproveRestaurant,
		TargetID: uint(id),
	}, "餐厅已上架", "餐厅审批失败")
}

// RejectRestaurant 拒绝即删除，连同其下所有评价
func RejectRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的餐厅ID"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionRejectRestaurant,
		TargetID: uint(id),
	}, "餐厅已拒绝并删除", "餐厅审批失败")
}

func SetRestaurantFeatured(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的餐厅ID"})
		return
	}

	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionSetRestaurantFeatured,
		TargetID: uint(id),
		Enabled:  *req.Enabled,
	}, "设置成功", "设置推荐状态失败")
}

func SetRestaurantPromoted(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的餐厅ID"})
		return
	}

	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionSetRestaurantPromoted,
		TargetID: uint(id),
		Enabled:  *req.Enabled,
	}, "设置成功", "设置推广状态失败")
}

func ApproveReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评价ID"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionApproveReview,
		TargetID: uint(id),
	}, "评价已通过", "评价审批失败")
}

func DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评价ID"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionDeleteReview,
		TargetID: uint(id),
	}, "评价已删除", "删除评价失败")
}

func BulkDeleteRestaurants(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:      service.ActionBulkDeleteRestaurants,
		TargetIDs: req.IDs,
	}, "批量删除完成", "批量删除餐厅失败")
}

func BulkDeleteReviews(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:      service.ActionBulkDeleteReviews,
		TargetIDs: req.IDs,
	}, "批量删除完成", "批量删除评价失败")
}
