package service

import (
	"errors"
	"yalla-server/internal/common"
	"yalla-server/internal/consts"
	"yalla-server/internal/db"
	"yalla-server/internal/model"
	"yalla-server/internal/repository"

	"gorm.io/gorm"
)

// defaultAutoBadges 六个自动等级徽章，hierarchy 自低到高。
var defaultAutoBadges = []model.Badge{
	{Name: consts.TierNewcomer, Description: "Just getting started", Hierarchy: 10, Auto: true},
	{Name: consts.TierFoodExplorer, Description: "Starting to explore the food scene", Hierarchy: 20, Auto: true},
	{Name: consts.TierRisingCritic, Description: "Opinions people start to notice", Hierarchy: 30, Auto: true},
	{Name: consts.TierExperiencedDiner, Description: "A seasoned palate", Hierarchy: 40, Auto: true},
	{Name: consts.TierExpertReviewer, Description: "Reviews you can rely on", Hierarchy: 50, Auto: true},
	{Name: consts.TierEliteFoodie, Description: "The community's finest", Hierarchy: 60, Auto: true},
}

// InitializeBadges 确保六个自动等级徽章存在。
func InitializeBadges() {
	for _, def := range defaultAutoBadges {
		var count int64
		db.DB.Model(&model.Badge{}).Where("name = ?", def.Name).Count(&count)
		if count == 0 {
			badge := def
			db.DB.Create(&badge)
		}
	}
}

// ReconcileTierTx 在调用方事务内把用户的自动等级徽章校正为 tierName 一个。
// 不变量：任一时刻用户至多持有一个自动等级徽章；
// 已持有目标徽章时不产生任何写入（幂等）。
func ReconcileTierTx(tx *gorm.DB, userID uint, tierName string) error {
	var target model.Badge
	if err := tx.Where("name = ? AND auto = ?", tierName, true).First(&target).Error; err != nil {
		return err
	}

	var autoIDs []uint
	if err := tx.Model(&model.Badge{}).Where("auto = ?", true).Pluck("id", &autoIDs).Error; err != nil {
		return err
	}

	// 清掉除目标外的所有自动徽章
	if err := tx.Where("user_id = ? AND badge_id IN ? AND badge_id != ?", userID, autoIDs, target.ID).
		Delete(&model.UserBadge{}).Error; err != nil {
		return err
	}

	var count int64
	if err := tx.Model(&model.UserBadge{}).
		Where("user_id = ? AND badge_id = ?", userID, target.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return tx.Create(&model.UserBadge{UserID: userID, BadgeID: target.ID}).Error
}

// AssignBadgeTx 管理员给用户颁发自定义徽章；重复颁发为无操作成功。
func AssignBadgeTx(tx *gorm.DB, userID uint, badgeID uint) error {
	var count int64
	if err := tx.Model(&model.UserBadge{}).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return tx.Create(&model.UserBadge{UserID: userID, BadgeID: badgeID}).Error
}

// RemoveBadgeTx 摘除用户的某个徽章；本就未持有时为无操作成功。
func RemoveBadgeTx(tx *gorm.DB, userID uint, badgeID uint) error {
	return tx.Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Delete(&model.UserBadge{}).Error
}

// EffectiveBadge 返回用户对外展示的徽章名称。
// 持有管理员颁发的自定义徽章时取 hierarchy 最大者，
// hierarchy 相同按徽章 id 最小者，保证结果确定；
// 没有自定义徽章时回落到自动等级徽章（User.Badge 缓存列）。
func EffectiveBadge(userID uint) (string, error) {
	var badge model.Badge
	err := db.DB.Model(&model.Badge{}).
		Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ? AND badges.auto = ?", userID, false).
		Order("badges.hierarchy DESC, badges.id ASC").
		First(&badge).Error
	if err == nil {
		return badge.Name, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	user, err := repository.User.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user.Badge != "" {
		return user.Badge, nil
	}
	return consts.TierNewcomer, nil
}

// ListBadges 返回全部徽章定义。
func ListBadges() ([]model.Badge, error) {
	badges, err := repository.Badge.FindAll()
	if err != nil {
		return nil, common.NewInternalError("获取徽章列表失败")
	}
	return badges, nil
}

// CreateBadge 创建管理员自定义徽章。自动等级徽章由系统维护，不走这里。
func CreateBadge(name string, description string, hierarchy int) (*model.Badge, error) {
	if name == "" {
		return nil, common.NewValidationError("徽章名称不能为空")
	}

	_, err := repository.Badge.FindByName(name)
	if err == nil {
		return nil, common.NewConflictError("徽章名称已存在")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewInternalError("查询徽章失败")
	}

	badge := &model.Badge{Name: name, Description: description, Hierarchy: hierarchy, Auto: false}
	if err := repository.Badge.Create(badge); err != nil {
		return nil, common.NewInternalError("创建徽章失败")
	}
	return badge, nil
}
