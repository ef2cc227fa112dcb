package repository

import (
	"strings"
	"yalla-server/internal/consts"
	"yalla-server/internal/db"
	"yalla-server/internal/model"
)

type UserRepository struct{}

var User = &UserRepository{}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsernameOrEmail(input string) (*model.User, error) {
	var user model.User
	if err := db.DB.Where("username = ? OR email = ?", input, input).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return db.DB.Create(user).Error
}

func (r *UserRepository) UpdateByID(userID uint, updates map[string]interface{}) error {
	var user model.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return err
	}
	return db.DB.Model(&user).Updates(updates).Error
}

func (r *UserRepository) FieldExists(field consts.UserField, value string, excludeUserID *uint) (bool, error) {
	query := db.DB.Model(&model.User{}).Unscoped()
	if excludeUserID != nil {
		query = query.Where("id != ?", *excludeUserID)
	}

	var count int64
	if err := query.Where(string(field)+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) ListUsers(keyword string, order string, offset int, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := db.DB.Model(&model.User{})
	kw := strings.TrimSpace(keyword)
	if kw != "" {
		query = query.Where("username LIKE ?", "%"+kw+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order(order).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// TopReviewers 按已发布评价数从高到低返回前 limit 名用户。
func (r *UserRepository) TopReviewers(limit int) ([]model.User, error) {
	var users []model.User
	err := db.DB.Model(&model.User{}).
		Joins("LEFT JOIN reviews ON reviews.user_id = users.id").
		Group("users.id").
		Order("COUNT(reviews.id) DESC, users.id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	if err := db.DB.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
