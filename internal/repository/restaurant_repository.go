package repository

import (
	"strings"
	"yalla-server/internal/db"
	"yalla-server/internal/model"
)

type RestaurantRepository struct{}

var Restaurant = &RestaurantRepository{}

// RestaurantListParams 公开列表的筛选条件，只作用于已审核餐厅。
type RestaurantListParams struct {
	CuisineID uint
	Price     int
	Keyword   string
	Offset    int
	Limit     int
}

func (r *RestaurantRepository) FindByID(id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := db.DB.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Create(restaurant *model.Restaurant) error {
	return db.DB.Create(restaurant).Error
}

// ListApproved 按筛选条件查询已审核餐厅，运营位（featured/promoted）优先。
func (r *RestaurantRepository) ListApproved(params RestaurantListParams) ([]model.Restaurant, int64, error) {
	var restaurants []model.Restaurant
	var total int64

	query := db.DB.Model(&model.Restaurant{}).Where("approved = ?", true)
	if params.CuisineID != 0 {
		query = query.Where("cuisine_id = ?", params.CuisineID)
	}
	if params.Price != 0 {
		query = query.Where("price_range = ?", params.Price)
	}
	kw := strings.TrimSpace(params.Keyword)
	if kw != "" {
		query = query.Where("name LIKE ?", "%"+kw+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("featured DESC, promoted DESC, created_at DESC")
	if params.Limit > 0 {
		query = query.Offset(params.Offset).Limit(params.Limit)
	}

	if err := query.Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}

	return restaurants, total, nil
}

// ListPending 管理后台的待审核队列。
func (r *RestaurantRepository) ListPending() ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := db.DB.Where("approved = ?", false).Order("created_at ASC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// AvgRating 已发布评价的平均评分，保留一位小数；无评价时为 0。
func (r *RestaurantRepository) AvgRating(restaurantID uint) (float64, error) {
	var avg *float64
	err := db.DB.Model(&model.Review{}).
		Where("restaurant_id = ? AND approved = ?", restaurantID, true).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return float64(int(*avg*10+0.5)) / 10, nil
}

func (r *RestaurantRepository) CountAll() (int64, error) {
	var count int64
	if err := db.DB.Model(&model.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type CuisineRepository struct{}

var Cuisine = &CuisineRepository{}

func (r *CuisineRepository) FindAll() ([]model.Cuisine, error) {
	var cuisines []model.Cuisine
	if err := db.DB.Order("id ASC").Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (r *CuisineRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := db.DB.Model(&model.Cuisine{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
