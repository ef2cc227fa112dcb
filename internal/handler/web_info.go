package handler

import (
	"net/http"
	"yalla-server/internal/consts"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

func GetWebInfo(c *gin.Context) {
	// 只获取前台展示用的公共配置项
	allowKeys := []string{
		consts.ConfigSiteName,
		consts.ConfigSiteDescription,
	}

	type WebInfoItem struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	var response []WebInfoItem
	for _, key := range allowKeys {
		val := service.GetString(key)
		response = append(response, WebInfoItem{
			Key:   key,
			Value: val,
		})
	}
	c.JSON(http.StatusOK, response)
}

// GetFeatureState 前端据此决定入口的显隐
func GetFeatureState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"allow_register":        service.GetBool(consts.ConfigAllowRegister),
		"reviews_enabled":       service.FeatureEnabled(consts.FeatureReviews),
		"submissions_enabled":   service.FeatureEnabled(consts.FeatureRestaurantSubmissions),
		"maintenance_mode":      service.GetBool(consts.FeatureMaintenanceMode),
		"reputation_badge_mode": service.GetString(consts.ConfigReputationBadgeMode),
		"application_version":   consts.ApplicationVersion,
	})
}
