package handler

import (
	"net/http"
	"strconv"
	"yalla-server/internal/common/httpx"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetRestaurantList 公开餐厅列表，只含已上架的餐厅
func GetRestaurantList(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")
	cuisineStr := c.DefaultQuery("cuisine_id", "0")
	priceStr := c.DefaultQuery("price", "0")
	minRatingStr := c.DefaultQuery("min_rating", "0")
	keyword := c.Query("keyword")

	page, _ := strconv.Atoi(pageStr)
	pageSize, _ := strconv.Atoi(pageSizeStr)
	cuisineID, _ := strconv.Atoi(cuisineStr)
	price, _ := strconv.Atoi(priceStr)
	minRating, _ := strconv.Atoi(minRatingStr)

	items, total, err := service.ListRestaurants(service.RestaurantListParams{
		CuisineID: uint(cuisineID),
		Price:     price,
		MinRating: minRating,
		Keyword:   keyword,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取餐厅列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func SearchRestaurants(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		c.JSON(http.StatusOK, gin.H{"data": []interface{}{}})
		return
	}

	items, err := service.SearchRestaurants(keyword)
	if err != nil {
		httpx.WriteServiceError(c, err, "搜索失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetRestaurantDetail 餐厅详情。
// 待审核餐厅仅提交者本人和管理员可见。
func GetRestaurantDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的餐厅ID"})
		return
	}

	detail, err := service.GetRestaurantDetail(uint(id), currentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取餐厅详情失败")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func GetCuisineList(c *gin.Context) {
	cuisines, err := service.ListCuisines()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取菜系列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cuisines})
}

// SubmitRestaurant 用户提交新餐厅，是否直接上架取决于审核开关
func SubmitRestaurant(c *gin.Context) {
	actor := currentActor(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户信息失败"})
		return
	}

	var req struct {
		Name            string `json:"name" binding:"required"`
		Description     string `json:"description"`
		Address         string `json:"address" binding:"required"`
		Phone           string `json:"phone"`
		WorkingHours    string `json:"working_hours"`
		PriceRange      int    `json:"price_range"`
		CuisineID       uint   `json:"cuisine_id" binding:"required"`
		ImageURL        string `json:"image_url"`
		IsSmallBusiness bool   `json:"is_small_business"`
		HasVegetarian   bool   `json:"has_vegetarian"`
		HasVegan        bool   `json:"has_vegan"`
		IsHalal         bool   `json:"is_halal"`
		HasGlutenFree   bool   `json:"has_gluten_free"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	restaurant, err := service.SubmitRestaurant(actor, service.RestaurantInput{
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		Phone:           req.Phone,
		WorkingHours:    req.WorkingHours,
		PriceRange:      req.PriceRange,
		CuisineID:       req.CuisineID,
		ImageURL:        req.ImageURL,
		IsSmallBusiness: req.IsSmallBusiness,
		HasVegetarian:   req.HasVegetarian,
		HasVegan:        req.HasVegan,
		IsHalal:         req.IsHalal,
		HasGlutenFree:   req.HasGlutenFree,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "提交餐厅失败")
		return
	}

	message := "餐厅已提交，等待管理员审核"
	if restaurant.Approved {
		message = "餐厅已发布"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"restaurant": restaurant,
	})
}
