package admin

import (
	"net/http"
	"strconv"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

func GetBadgeList(c *gin.Context) {
	badges, err := service.ListBadges()
	if err != nil {
		writeServiceError(c, err, "获取徽章列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": badges})
}

// CreateBadge 创建自定义徽章（等级徽章由声望系统自动维护）
func CreateBadge(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Hierarchy   int    `json:"hierarchy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	badge, err := service.CreateBadge(req.Name, req.Description, req.Hierarchy)
	if err != nil {
		writeServiceError(c, err, "创建徽章失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "徽章创建成功",
		"badge":   badge,
	})
}

func AssignBadge(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var req struct {
		BadgeID uint `json:"badge_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionAssignBadge,
		TargetID: uint(userID),
		BadgeID:  req.BadgeID,
	}, "徽章已颁发", "颁发徽章失败")
}

func RemoveBadge(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var req struct {
		BadgeID uint `json:"badge_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionRemoveBadge,
		TargetID: uint(userID),
		BadgeID:  req.BadgeID,
	}, "徽章已摘除", "摘除徽章失败")
}
