package admin

import (
	"net/http"
	"strconv"
	"yalla-server/internal/middleware"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetUserList 获取用户列表
func GetUserList(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")
	keyword := c.Query("keyword")
	order := c.Query("order")

	page, _ := strconv.Atoi(pageStr)
	pageSize, _ := strconv.Atoi(pageSizeStr)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	users, total, err := service.AdminListUsers(service.AdminUserListParams{
		Page:     page,
		PageSize: pageSize,
		Keyword:  keyword,
		Order:    order,
	})
	if err != nil {
		writeServiceError(c, err, "获取用户列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetUserDetail 获取指定用户信息
func GetUserDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	user, err := service.AdminGetUserDetail(uint(id))
	if err != nil {
		writeServiceError(c, err, "获取用户信息失败")
		return
	}

	badge, err := service.EffectiveBadge(user.ID)
	if err != nil {
		writeServiceError(c, err, "获取用户信息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":            user,
		"effective_badge": badge,
	})
}

// BanUser 封禁用户。
// 封禁后清理状态缓存，让该用户的存量 Token 立即失效。
func BanUser(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	// reason 可省略，服务层会补默认文案
	_ = c.ShouldBindJSON(&req)

	dispatch(c, service.AdminAction{
		Type:     service.ActionBanUser,
		TargetID: uint(id),
		Reason:   req.Reason,
	}, "用户已封禁", "封禁用户失败")

	middleware.ClearUserStatusCache(uint(id))
}

// UnbanUser 解除封禁
func UnbanUser(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:     service.ActionUnbanUser,
		TargetID: uint(id),
	}, "已解除封禁", "解封用户失败")

	middleware.ClearUserStatusCache(uint(id))
}
