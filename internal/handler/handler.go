package handler

import (
	"yalla-server/internal/model"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// currentActor 取出已认证的当前用户；未认证时返回 nil。
func currentActor(c *gin.Context) *model.User {
	userId, exists := c.Get("id")
	if !exists {
		return nil
	}
	uid, ok := userId.(uint)
	if !ok {
		return nil
	}
	user, err := service.CurrentUser(uid)
	if err != nil {
		return nil
	}
	return user
}
