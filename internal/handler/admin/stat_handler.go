package admin

import (
	"net/http"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetServerStats 后台概览数据
func GetServerStats(c *gin.Context) {
	stats, err := service.GetServerStatsForAdmin()
	if err != nil {
		writeServiceError(c, err, "获取服务器统计失败")
		return
	}

	c.JSON(http.StatusOK, stats)
}
