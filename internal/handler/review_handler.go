package handler

import (
	"net/http"
	"strconv"
	"yalla-server/internal/common/httpx"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitReview 对指定餐厅发布评价
func SubmitReview(c *gin.Context) {
	actor := currentActor(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户信息失败"})
		return
	}

	idStr := c.Param("id")
	restaurantID, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的餐厅ID"})
		return
	}

	var req struct {
		Rating           int    `json:"rating" binding:"required"`
		Title            string `json:"title"`
		Content          string `json:"content" binding:"required"`
		ReceiptConfirmed bool   `json:"receipt_confirmed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	review, err := service.SubmitReview(actor, uint(restaurantID), service.ReviewInput{
		Rating:           req.Rating,
		Title:            req.Title,
		Content:          req.Content,
		ReceiptConfirmed: req.ReceiptConfirmed,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "发布评价失败")
		return
	}

	message := "评价已提交，等待管理员审核"
	if review.Approved {
		message = "评价已发布"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"review":  review,
	})
}

// DeleteSelfReview 删除自己的评价
func DeleteSelfReview(c *gin.Context) {
	actor := currentActor(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户信息失败"})
		return
	}

	idStr := c.Param("id")
	reviewID, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评价ID"})
		return
	}

	if err := service.DeleteReview(actor, uint(reviewID)); err != nil {
		httpx.WriteServiceError(c, err, "删除评价失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "评价已删除"})
}
