package service

import (
	"errors"
	"math"
	"yalla-server/internal/common"
	"yalla-server/internal/consts"
	"yalla-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 声望系统。
// 分数始终从当前评价集整体重算，从不做增量累加，
// 这样删评、审核驳回之后的下一次重算都能自动修正。

// CalculateScore 由评价数 n 与用户打出的平均分 avg 计算声望分：
// floor(n*10 + avg*5)；n 为 0 时恒为 0。纯函数。
func CalculateScore(n int, avg float64) int {
	if n == 0 {
		return 0
	}
	return int(math.Floor(float64(n)*10 + avg*5))
}

// TierForScore 按声望分选择等级（score 模式阈值表）。
func TierForScore(score int) string {
	switch {
	case score >= 100:
		return consts.TierEliteFoodie
	case score >= 75:
		return consts.TierExpertReviewer
	case score >= 50:
		return consts.TierExperiencedDiner
	case score >= 25:
		return consts.TierRisingCritic
	case score >= 10:
		return consts.TierFoodExplorer
	default:
		return consts.TierNewcomer
	}
}

// TierForCount 按评价数选择等级（count 模式阈值表）。
func TierForCount(n int) string {
	switch {
	case n >= 50:
		return consts.TierEliteFoodie
	case n >= 30:
		return consts.TierExpertReviewer
	case n >= 15:
		return consts.TierExperiencedDiner
	case n >= 8:
		return consts.TierRisingCritic
	case n >= 3:
		return consts.TierFoodExplorer
	default:
		return consts.TierNewcomer
	}
}

// ResolveTier 根据 reputation_badge_mode 配置选择阈值表。
// 历史上两种策略都上过线，以 score 模式为准，count 模式保留为可配置项。
func ResolveTier(n int, score int) string {
	if GetString(consts.ConfigReputationBadgeMode) == consts.BadgeModeCount {
		return TierForCount(n)
	}
	return TierForScore(score)
}

// RecomputeUserTx 在调用方事务内重算用户声望并校正徽章。
// 先对用户行加排他锁，串行化同一用户的并发重算；
// 用户在事务中途被删除视为一致性错误，整个事务回滚。
func RecomputeUserTx(tx *gorm.DB, userID uint) error {
	var user model.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewInternalError("声望重算失败：用户已不存在")
		}
		return err
	}

	var n int64
	if err := tx.Model(&model.Review{}).
		Where("user_id = ? AND approved = ?", userID, true).
		Count(&n).Error; err != nil {
		return err
	}

	var avg float64
	if n > 0 {
		var avgPtr *float64
		if err := tx.Model(&model.Review{}).
			Where("user_id = ? AND approved = ?", userID, true).
			Select("AVG(rating)").
			Scan(&avgPtr).Error; err != nil {
			return err
		}
		if avgPtr != nil {
			avg = *avgPtr
		}
	}

	score := CalculateScore(int(n), avg)
	tier := ResolveTier(int(n), score)

	if err := ReconcileTierTx(tx, userID, tier); err != nil {
		return err
	}

	// badge 列是当前等级的冗余缓存，只在这里写入
	return tx.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reputation_score": score,
		"badge":            tier,
	}).Error
}
