package repository

import (
	"yalla-server/internal/db"
	"yalla-server/internal/model"
)

type ReviewRepository struct{}

var Review = &ReviewRepository{}

func (r *ReviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ExistsForUserAndRestaurant 检查 (用户, 餐厅) 是否已有评价，用于一人一评限制。
func (r *ReviewRepository) ExistsForUserAndRestaurant(userID uint, restaurantID uint) (bool, error) {
	var count int64
	err := db.DB.Model(&model.Review{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForRestaurant 餐厅详情页的评价列表，最新在前。
// includePending=false 时只返回已发布评价。
func (r *ReviewRepository) ListForRestaurant(restaurantID uint, includePending bool) ([]model.Review, error) {
	var reviews []model.Review
	query := db.DB.Where("restaurant_id = ?", restaurantID)
	if !includePending {
		query = query.Where("approved = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListForUser(userID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListPending 管理后台的待审核评价队列。
func (r *ReviewRepository) ListPending() ([]model.Review, error) {
	var reviews []model.Review
	if err := db.DB.Where("approved = ?", false).Order("created_at ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	if err := db.DB.Model(&model.Review{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReviewRepository) CountAll() (int64, error) {
	var count int64
	if err := db.DB.Model(&model.Review{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
