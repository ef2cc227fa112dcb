package repository

import (
	"yalla-server/internal/db"
	"yalla-server/internal/model"
)

type BadgeRepository struct{}

var Badge = &BadgeRepository{}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	if err := db.DB.First(&badge, id).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) FindByName(name string) (*model.Badge, error) {
	var badge model.Badge
	if err := db.DB.Where("name = ?", name).First(&badge).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	if err := db.DB.Order("auto DESC, hierarchy DESC, id ASC").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *BadgeRepository) Create(badge *model.Badge) error {
	return db.DB.Create(badge).Error
}

// ListForUser 返回用户当前持有的全部徽章（含自动等级徽章）。
func (r *BadgeRepository) ListForUser(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := db.DB.Model(&model.Badge{}).
		Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ?", userID).
		Order("badges.hierarchy DESC, badges.id ASC").
		Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}
