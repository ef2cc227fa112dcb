package service

import (
	"testing"

	"yalla-server/internal/common"
	"yalla-server/internal/consts"
	"yalla-server/internal/db"
	"yalla-server/internal/model"

	"gorm.io/gorm"
)

// 测试内容：验证自动徽章初始化幂等，重复执行不产生重复行。
func TestInitializeBadges_Idempotent(t *testing.T) {
	setupTestDB(t)

	InitializeBadges()
	InitializeBadges()

	var count int64
	if err := db.DB.Model(&model.Badge{}).Where("auto = ?", true).Count(&count).Error; err != nil {
		t.Fatalf("统计徽章失败: %v", err)
	}
	if count != 6 {
		t.Fatalf("期望 6 个自动徽章，实际为 %d", count)
	}
}

// 测试内容：验证等级校正后用户只持有一个自动徽章。
func TestReconcileTierTx_SingleAutoBadge(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, false)

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := ReconcileTierTx(tx, user.ID, consts.TierFoodExplorer); err != nil {
			return err
		}
		return ReconcileTierTx(tx, user.ID, consts.TierExpertReviewer)
	})
	if err != nil {
		t.Fatalf("校正等级失败: %v", err)
	}

	names := autoBadgeNames(t, user.ID)
	if len(names) != 1 || names[0] != consts.TierExpertReviewer {
		t.Fatalf("期望仅持有 %q，实际为 %v", consts.TierExpertReviewer, names)
	}
}

// 测试内容：验证重复校正同一等级不产生写入也不报错。
func TestReconcileTierTx_IdempotentSameTier(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, false)

	for i := 0; i < 3; i++ {
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			return ReconcileTierTx(tx, user.ID, consts.TierRisingCritic)
		})
		if err != nil {
			t.Fatalf("第 %d 次校正失败: %v", i+1, err)
		}
	}

	var count int64
	if err := db.DB.Model(&model.UserBadge{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("统计徽章失败: %v", err)
	}
	if count != 1 {
		t.Fatalf("期望 1 条持有记录，实际为 %d", count)
	}
}

// 测试内容：验证自定义徽章覆盖自动等级，hierarchy 高者优先，同级按 id 小者。
func TestEffectiveBadge_CustomPrecedence(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, false)
	recompute(t, user.ID) // 自动等级 Newcomer

	low, err := CreateBadge("Community Helper", "", 5)
	if err != nil {
		t.Fatalf("创建徽章失败: %v", err)
	}
	highA, err := CreateBadge("Founding Member", "", 90)
	if err != nil {
		t.Fatalf("创建徽章失败: %v", err)
	}
	highB, err := CreateBadge("City Ambassador", "", 90)
	if err != nil {
		t.Fatalf("创建徽章失败: %v", err)
	}

	for _, b := range []*model.Badge{low, highA, highB} {
		if err := AssignBadge(user.ID, b.ID); err != nil {
			t.Fatalf("颁发徽章失败: %v", err)
		}
	}

	// hierarchy 相同，id 小的 highA 胜出
	got, err := EffectiveBadge(user.ID)
	if err != nil {
		t.Fatalf("获取展示徽章失败: %v", err)
	}
	if got != highA.Name {
		t.Fatalf("期望 %q，实际为 %q", highA.Name, got)
	}
}

// 测试内容：验证没有任何徽章时展示徽章回落为 Newcomer。
func TestEffectiveBadge_FallbackNewcomer(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, false)

	got, err := EffectiveBadge(user.ID)
	if err != nil {
		t.Fatalf("获取展示徽章失败: %v", err)
	}
	if got != consts.TierNewcomer {
		t.Fatalf("期望 %q，实际为 %q", consts.TierNewcomer, got)
	}
}

// 测试内容：验证摘除自定义徽章后回落到自动等级。
func TestEffectiveBadge_FallbackAutoAfterRemoval(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, false)

	restaurant := createTestRestaurant(t, nil, true)
	createTestReview(t, user.ID, restaurant.ID, 4, true)
	recompute(t, user.ID) // 30 分 → Rising Critic

	badge, err := CreateBadge("Taste Maker", "", 10)
	if err != nil {
		t.Fatalf("创建徽章失败: %v", err)
	}
	if err := AssignBadge(user.ID, badge.ID); err != nil {
		t.Fatalf("颁发徽章失败: %v", err)
	}
	if err := RemoveBadge(user.ID, badge.ID); err != nil {
		t.Fatalf("摘除徽章失败: %v", err)
	}

	got, err := EffectiveBadge(user.ID)
	if err != nil {
		t.Fatalf("获取展示徽章失败: %v", err)
	}
	if got != consts.TierRisingCritic {
		t.Fatalf("期望 %q，实际为 %q", consts.TierRisingCritic, got)
	}
}

// 测试内容：验证重复名称的徽章创建返回冲突错误。
func TestCreateBadge_DuplicateNameConflict(t *testing.T) {
	setupTestDB(t)

	if _, err := CreateBadge("Local Legend", "", 1); err != nil {
		t.Fatalf("创建徽章失败: %v", err)
	}

	_, err := CreateBadge("Local Legend", "", 2)
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeConflict {
		t.Fatalf("期望冲突错误，实际为 %v", err)
	}
}
