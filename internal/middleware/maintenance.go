package middleware

import (
	"net/http"
	"strings"
	"yalla-server/internal/config"
	"yalla-server/internal/consts"
	"yalla-server/internal/service"
	"yalla-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// maintenanceAllowPaths 维护模式下仍然放行的路径。
// 站点信息和登录必须可用，否则管理员自己也进不来。
var maintenanceAllowPaths = []string{
	"/api/webinfo",
	"/api/auth/login",
}

// MaintenanceCheck 维护模式开关。
// 开启后除放行路径外全部返回 503，配置中的白名单 IP 和管理员 Token 例外。
// 注意：该开关与其他功能开关不同，开启即拒绝，不走"读不到就放行"的逻辑。
func MaintenanceCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !service.GetBool(consts.FeatureMaintenanceMode) {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		for _, allowed := range maintenanceAllowPaths {
			if path == allowed {
				c.Next()
				return
			}
		}

		// 配置中的 IP 白名单
		clientIP := c.ClientIP()
		for _, allowIP := range config.Get().Server.MaintenanceAllowIPs {
			if clientIP == strings.TrimSpace(allowIP) {
				c.Next()
				return
			}
		}

		// 管理员携带有效 Token 时放行
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := utils.ParseLoginToken(parts[1]); err == nil && claims.Admin {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "站点维护中，请稍后再试"})
		c.Abort()
	}
}
