package handler

import (
	"net/http"
	"strconv"
	"yalla-server/internal/common/httpx"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetUserProfile 按用户名查看公开主页
func GetUserProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户名不能为空"})
		return
	}

	profile, err := service.GetProfile(username)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户主页失败")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetTopReviewers 评价数最多的活跃用户榜单
func GetTopReviewers(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	users, err := service.TopReviewers(limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取榜单失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}
