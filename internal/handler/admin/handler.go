package admin

import (
	"net/http"
	"yalla-server/internal/model"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// currentAdmin 取出当前管理员用户。
// 路由组已挂 AdminCheck，这里兜底处理用户被并发删除的情况。
func currentAdmin(c *gin.Context) (*model.User, bool) {
	userId, exists := c.Get("id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户信息失败"})
		return nil, false
	}
	uid, ok := userId.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户信息失败"})
		return nil, false
	}
	user, err := service.CurrentUser(uid)
	if err != nil {
		writeServiceError(c, err, "获取用户信息失败")
		return nil, false
	}
	return user, true
}

// dispatch 把管理动作送入统一入口，并写出响应
func dispatch(c *gin.Context, action service.AdminAction, okMessage string, fallback string) {
	actor, ok := currentAdmin(c)
	if !ok {
		return
	}

	result, err := service.Dispatch(actor, action)
	if err != nil {
		writeServiceError(c, err, fallback)
		return
	}

	if result == nil {
		c.JSON(http.StatusOK, gin.H{"message": okMessage})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMessage, "data": result})
}
