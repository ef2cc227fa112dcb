package admin

import (
	"net/http"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSettings 获取全部系统设置，敏感项的值做掩码处理
func GetSettings(c *gin.Context) {
	settings, err := service.ListSettingsForAdmin()
	if err != nil {
		writeServiceError(c, err, "获取设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

// UpdateSettings 批量更新系统设置
func UpdateSettings(c *gin.Context) {
	var req struct {
		Settings []struct {
			Key   string `json:"key" binding:"required"`
			Value string `json:"value"`
		} `json:"settings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	items := make([]service.UpdateSettingPayload, 0, len(req.Settings))
	for _, s := range req.Settings {
		items = append(items, service.UpdateSettingPayload{Key: s.Key, Value: s.Value})
	}

	if err := service.UpdateSettingsForAdmin(items); err != nil {
		writeServiceError(c, err, "更新设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "设置更新成功"})
}

// ToggleFeature 切换单个功能开关
func ToggleFeature(c *gin.Context) {
	var req struct {
		Feature string `json:"feature" binding:"required"`
		Enabled *bool  `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	dispatch(c, service.AdminAction{
		Type:    service.ActionToggleFeature,
		Feature: req.Feature,
		Enabled: *req.Enabled,
	}, "功能开关已更新", "更新功能开关失败")
}
