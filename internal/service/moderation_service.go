package service

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"yalla-server/internal/common"
	"yalla-server/internal/consts"
	"yalla-server/internal/db"
	"yalla-server/internal/model"
	"yalla-server/internal/repository"

	"gorm.io/gorm"
)

// 审核网关：路由层触发的每个事件在这里编排为一个数据库事务。

type ReviewInput struct {
	Rating           int
	Title            string
	Content          string
	ReceiptConfirmed bool
}

type RestaurantInput struct {
	Name            string
	Description     string
	Address         string
	Phone           string
	WorkingHours    string
	PriceRange      int
	CuisineID       uint
	ImageURL        string
	IsSmallBusiness bool
	HasVegetarian   bool
	HasVegan        bool
	IsHalal         bool
	HasGlutenFree   bool
}

// SubmitReview 处理"发布评价"事件：
// 功能开关 → 可见性 → 字段校验 → 一人一评 → 入库 → 重算声望，单事务提交。
func SubmitReview(actor *model.User, restaurantID uint, input ReviewInput) (*model.Review, error) {
	if actor == nil {
		return nil, common.NewUnauthorizedError("请先登录")
	}
	if !FeatureEnabled(consts.FeatureReviews) {
		return nil, common.NewForbiddenError("评价功能暂时关闭")
	}

	restaurant, err := repository.Restaurant.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("餐厅不存在")
		}
		return nil, common.NewInternalError("获取餐厅失败")
	}
	if !RestaurantVisibleTo(restaurant, actor) {
		return nil, common.NewNotFoundError("餐厅不存在")
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, common.NewValidationError("评分必须在 1 到 5 之间")
	}
	content := strings.TrimSpace(input.Content)
	if len(content) < 10 || len(content) > 1000 {
		return nil, common.NewValidationError("评价内容长度需在 10 到 1000 字符之间")
	}
	if len(input.Title) > 100 {
		return nil, common.NewValidationError("评价标题过长")
	}

	exists, err := repository.Review.ExistsForUserAndRestaurant(actor.ID, restaurantID)
	if err != nil {
		return nil, common.NewInternalError("检查评价记录失败")
	}
	if exists {
		return nil, common.NewConflictError("你已经评价过这家餐厅")
	}

	review := model.Review{
		Rating:           input.Rating,
		Title:            input.Title,
		Content:          content,
		UserID:           &actor.ID,
		RestaurantID:     restaurantID,
		Approved:         !FeatureEnabled(consts.FeatureReviewApproval),
		ReceiptConfirmed: input.ReceiptConfirmed,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return RecomputeUserTx(tx, actor.ID)
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return nil, err
		}
		return nil, common.NewInternalError("发布评价失败")
	}

	return &review, nil
}

// SubmitRestaurant 处理"提交餐厅"事件。
// 初始状态：管理员提交或审核开关关闭时直接上架，否则进入待审核。
func SubmitRestaurant(actor *model.User, input RestaurantInput) (*model.Restaurant, error) {
	if actor == nil {
		return nil, common.NewUnauthorizedError("请先登录")
	}
	if !FeatureEnabled(consts.FeatureRestaurantSubmissions) {
		return nil, common.NewForbiddenError("餐厅提交功能暂时关闭")
	}

	if err := validateRestaurantInput(input); err != nil {
		return nil, err
	}

	cuisineExists, err := repository.Cuisine.Exists(input.CuisineID)
	if err != nil {
		return nil, common.NewInternalError("检查菜系失败")
	}
	if !cuisineExists {
		return nil, common.NewValidationError("无效的菜系")
	}

	approved := actor.Admin || !FeatureEnabled(consts.FeatureRestaurantApproval)

	restaurant := model.Restaurant{
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		Address:         input.Address,
		Phone:           input.Phone,
		WorkingHours:    input.WorkingHours,
		PriceRange:      input.PriceRange,
		CuisineID:       input.CuisineID,
		ImageURL:        input.ImageURL,
		UserID:          &actor.ID,
		IsSmallBusiness: input.IsSmallBusiness,
		HasVegetarian:   input.HasVegetarian,
		HasVegan:        input.HasVegan,
		IsHalal:         input.IsHalal,
		HasGlutenFree:   input.HasGlutenFree,
		Approved:        approved,
	}

	// 管理员提交即上架，补齐审计字段
	if approved && actor.Admin {
		now := time.Now()
		restaurant.ApprovedBy = &actor.ID
		restaurant.ApprovedAt = &now
	}

	if err := repository.Restaurant.Create(&restaurant); err != nil {
		return nil, common.NewInternalError("提交餐厅失败")
	}

	return &restaurant, nil
}

// DeleteReview 作者或管理员删除评价，同一事务内重算作者声望。
func DeleteReview(actor *model.User, reviewID uint) error {
	if actor == nil {
		return common.NewUnauthorizedError("请先登录")
	}

	review, err := repository.Review.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("评价不存在")
		}
		return common.NewInternalError("获取评价失败")
	}

	isAuthor := review.UserID != nil && *review.UserID == actor.ID
	if !isAuthor && !actor.Admin {
		return common.NewForbiddenError("无权删除该评价")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Review{}, reviewID).Error; err != nil {
			return err
		}
		if review.UserID != nil {
			return RecomputeUserTx(tx, *review.UserID)
		}
		return nil
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return err
		}
		return common.NewInternalError("删除评价失败")
	}
	return nil
}

// RestaurantVisibleTo 可见性规则：已上架对所有人可见；
// 待审核餐厅只有提交者本人和管理员可见。
func RestaurantVisibleTo(restaurant *model.Restaurant, actor *model.User) bool {
	if restaurant.Approved {
		return true
	}
	if actor == nil {
		return false
	}
	if actor.Admin {
		return true
	}
	return restaurant.UserID != nil && *restaurant.UserID == actor.ID
}

func validateRestaurantInput(input RestaurantInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > 100 {
		return common.NewValidationError("餐厅名称不能为空且不超过 100 字符")
	}
	if strings.TrimSpace(input.Description) == "" || len(input.Description) > 500 {
		return common.NewValidationError("餐厅描述不能为空且不超过 500 字符")
	}
	if strings.TrimSpace(input.Address) == "" || len(input.Address) > 200 {
		return common.NewValidationError("餐厅地址不能为空且不超过 200 字符")
	}
	if input.PriceRange < 1 || input.PriceRange > 4 {
		return common.NewValidationError("价格区间必须在 1 到 4 之间")
	}
	return nil
}

// ---- 管理员动作 ----

// AdminActionType 管理员动作的标签类型。
// 单一入口 Dispatch 按标签分发，每个分支可独立测试。
type AdminActionType string

const (
	ActionApproveRestaurant     AdminActionType = "approve_restaurant"
	ActionRejectRestaurant      AdminActionType = "reject_restaurant"
	ActionSetRestaurantFeatured AdminActionType = "set_restaurant_featured"
	ActionSetRestaurantPromoted AdminActionType = "set_restaurant_promoted"
	ActionApproveReview         AdminActionType = "approve_review"
	ActionDeleteReview          AdminActionType = "delete_review"
	ActionBanUser               AdminActionType = "ban_user"
	ActionUnbanUser             AdminActionType = "unban_user"
	ActionToggleFeature         AdminActionType = "toggle_feature"
	ActionAssignBadge           AdminActionType = "assign_badge"
	ActionRemoveBadge           AdminActionType = "remove_badge"
	ActionBulkDeleteRestaurants AdminActionType = "bulk_delete_restaurants"
	ActionBulkDeleteReviews     AdminActionType = "bulk_delete_reviews"
)

type AdminAction struct {
	Type      AdminActionType
	TargetID  uint
	TargetIDs []uint // 批量删除
	BadgeID   uint   // assign/remove badge
	Reason    string // ban
	Feature   string // toggle feature
	Enabled   bool   // toggle feature / featured / promoted
}

// Dispatch 管理员动作的唯一入口：鉴权后按动作标签分发。
func Dispatch(actor *model.User, action AdminAction) (interface{}, error) {
	if actor == nil || !actor.Admin {
		return nil, common.NewForbiddenError("需要管理员权限才能操作")
	}

	switch action.Type {
	case ActionApproveRestaurant:
		return ApproveRestaurant(actor.ID, action.TargetID)
	case ActionRejectRestaurant:
		return nil, RejectRestaurant(action.TargetID)
	case ActionSetRestaurantFeatured:
		return SetRestaurantFlag(action.TargetID, "featured", action.Enabled)
	case ActionSetRestaurantPromoted:
		return SetRestaurantFlag(action.TargetID, "promoted", action.Enabled)
	case ActionApproveReview:
		return ApproveReview(action.TargetID)
	case ActionDeleteReview:
		return nil, DeleteReview(actor, action.TargetID)
	case ActionBanUser:
		return BanUser(action.TargetID, action.Reason)
	case ActionUnbanUser:
		return UnbanUser(action.TargetID)
	case ActionToggleFeature:
		return nil, ToggleFeature(action.Feature, action.Enabled)
	case ActionAssignBadge:
		return nil, AssignBadge(action.TargetID, action.BadgeID)
	case ActionRemoveBadge:
		return nil, RemoveBadge(action.TargetID, action.BadgeID)
	case ActionBulkDeleteRestaurants:
		return nil, BulkDeleteRestaurants(action.TargetIDs)
	case ActionBulkDeleteReviews:
		return nil, BulkDeleteReviews(action.TargetIDs)
	default:
		return nil, common.NewValidationError("未知的管理员动作")
	}
}

// ApproveRestaurant 上架餐厅并记录审批人与时间；重复上架为无操作成功。
func ApproveRestaurant(approverID uint, restaurantID uint) (*model.Restaurant, error) {
	restaurant, err := repository.Restaurant.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("餐厅不存在")
		}
		return nil, common.NewInternalError("获取餐厅失败")
	}

	if restaurant.Approved {
		return restaurant, nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"approved":    true,
		"approved_by": approverID,
		"approved_at": now,
	}
	if err := db.DB.Model(restaurant).Updates(updates).Error; err != nil {
		return nil, common.NewInternalError("上架餐厅失败")
	}

	restaurant.Approved = true
	restaurant.ApprovedBy = &approverID
	restaurant.ApprovedAt = &now
	return restaurant, nil
}

// RejectRestaurant 驳回即硬删除，级联删除其全部评价，
// 并在同一事务内重算受影响作者的声望。
func RejectRestaurant(restaurantID uint) error {
	_, err := repository.Restaurant.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("餐厅不存在")
		}
		return common.NewInternalError("获取餐厅失败")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		authorIDs, err := affectedAuthorIDs(tx, "restaurant_id = ?", restaurantID)
		if err != nil {
			return err
		}

		if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Restaurant{}, restaurantID).Error; err != nil {
			return err
		}

		for _, uid := range authorIDs {
			if err := RecomputeUserTx(tx, uid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return err
		}
		return common.NewInternalError("驳回餐厅失败")
	}
	return nil
}

// SetRestaurantFlag 运营位开关（featured/promoted），与审核状态互不影响。
func SetRestaurantFlag(restaurantID uint, flag string, enabled bool) (*model.Restaurant, error) {
	restaurant, err := repository.Restaurant.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("餐厅不存在")
		}
		return nil, common.NewInternalError("获取餐厅失败")
	}

	if err := db.DB.Model(restaurant).Update(flag, enabled).Error; err != nil {
		return nil, common.NewInternalError("更新餐厅失败")
	}

	if flag == "featured" {
		restaurant.Featured = enabled
	} else {
		restaurant.Promoted = enabled
	}
	return restaurant, nil
}

// ApproveReview 审核通过评价；已通过的评价重复审核为无操作成功。
// 评价计入作者的已发布评价集，需要重算声望。
func ApproveReview(reviewID uint) (*model.Review, error) {
	review, err := repository.Review.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("评价不存在")
		}
		return nil, common.NewInternalError("获取评价失败")
	}

	if review.Approved {
		return review, nil
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Review{}).Where("id = ?", reviewID).
			Update("approved", true).Error; err != nil {
			return err
		}
		if review.UserID != nil {
			return RecomputeUserTx(tx, *review.UserID)
		}
		return nil
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return nil, err
		}
		return nil, common.NewInternalError("审核评价失败")
	}

	review.Approved = true
	return review, nil
}

// BanUser 封禁用户。原因为空时使用占位文案；重复封禁仅更新原因。
// 调用方需要在成功后清理用户状态缓存，使存量会话下一个请求即失效。
func BanUser(userID uint, reason string) (*model.User, error) {
	user, err := repository.User.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, common.NewInternalError("获取用户失败")
	}

	banReason := strings.TrimSpace(reason)
	if banReason == "" {
		banReason = consts.DefaultBanReason
	}

	updates := map[string]interface{}{
		"status":     consts.UserStatusBanned,
		"ban_reason": banReason,
	}
	if err := db.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, common.NewInternalError("封禁用户失败")
	}

	user.Status = consts.UserStatusBanned
	user.BanReason = &banReason
	return user, nil
}

// UnbanUser 解封用户并清空封禁原因；对未封禁用户为无操作成功。
func UnbanUser(userID uint) (*model.User, error) {
	user, err := repository.User.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, common.NewInternalError("获取用户失败")
	}

	if user.Status != consts.UserStatusBanned {
		return user, nil
	}

	updates := map[string]interface{}{
		"status":     consts.UserStatusActive,
		"ban_reason": nil,
	}
	if err := db.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, common.NewInternalError("解封用户失败")
	}

	user.Status = consts.UserStatusActive
	user.BanReason = nil
	return user, nil
}

// ToggleFeature 写功能开关。开关不存在记录时会创建，写入后缓存立即失效。
func ToggleFeature(key string, enabled bool) error {
	if strings.TrimSpace(key) == "" {
		return common.NewValidationError("开关名称不能为空")
	}
	if err := SetSetting(key, strconv.FormatBool(enabled)); err != nil {
		return common.NewInternalError("更新功能开关失败")
	}
	return nil
}

// AssignBadge 管理员颁发自定义徽章；自动等级徽章只能由声望系统颁发。
func AssignBadge(userID uint, badgeID uint) error {
	badge, err := repository.Badge.FindByID(badgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("徽章不存在")
		}
		return common.NewInternalError("获取徽章失败")
	}
	if badge.Auto {
		return common.NewValidationError("等级徽章由声望系统自动管理")
	}

	if _, err := repository.User.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户不存在")
		}
		return common.NewInternalError("获取用户失败")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return AssignBadgeTx(tx, userID, badgeID)
	})
	if err != nil {
		return common.NewInternalError("颁发徽章失败")
	}
	return nil
}

// RemoveBadge 摘除用户的某个徽章。
func RemoveBadge(userID uint, badgeID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return RemoveBadgeTx(tx, userID, badgeID)
	})
	if err != nil {
		return common.NewInternalError("摘除徽章失败")
	}
	return nil
}

// BulkDeleteRestaurants 批量硬删除餐厅及其评价，一次事务内完成并重算受影响作者。
func BulkDeleteRestaurants(ids []uint) error {
	if len(ids) == 0 {
		return common.NewValidationError("请选择要删除的餐厅")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		authorIDs, err := affectedAuthorIDs(tx, "restaurant_id IN ?", ids)
		if err != nil {
			return err
		}

		if err := tx.Where("restaurant_id IN ?", ids).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", ids).Delete(&model.Restaurant{}).Error; err != nil {
			return err
		}

		for _, uid := range authorIDs {
			if err := RecomputeUserTx(tx, uid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return err
		}
		return common.NewInternalError("批量删除餐厅失败")
	}
	return nil
}

// BulkDeleteReviews 批量删除评价并重算受影响作者的声望。
func BulkDeleteReviews(ids []uint) error {
	if len(ids) == 0 {
		return common.NewValidationError("请选择要删除的评价")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		authorIDs, err := affectedAuthorIDs(tx, "id IN ?", ids)
		if err != nil {
			return err
		}

		if err := tx.Where("id IN ?", ids).Delete(&model.Review{}).Error; err != nil {
			return err
		}

		for _, uid := range authorIDs {
			if err := RecomputeUserTx(tx, uid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return err
		}
		return common.NewInternalError("批量删除评价失败")
	}
	return nil
}

// affectedAuthorIDs 统计一批评价的去重作者 id（匿名评价跳过）。
func affectedAuthorIDs(tx *gorm.DB, cond string, args ...interface{}) ([]uint, error) {
	var ids []uint
	err := tx.Model(&model.Review{}).
		Where(cond, args...).
		Where("user_id IS NOT NULL").
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
