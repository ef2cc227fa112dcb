package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"yalla-server/internal/config"
	"yalla-server/internal/db"
	"yalla-server/internal/model"
	"yalla-server/internal/testutils"

	"gorm.io/gorm"
)

var testSeq int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.InitConfig("")

	gdb := testutils.SetupDB(t)
	InitializeSettings()
	InitializeBadges()
	ClearCache()
	t.Cleanup(ClearCache)
	return gdb
}

func nextSeq() int64 {
	return atomic.AddInt64(&testSeq, 1)
}

func createTestUser(t *testing.T, admin bool) *model.User {
	t.Helper()
	seq := nextSeq()
	user := model.User{
		Username: fmt.Sprintf("user%d", seq),
		Email:    fmt.Sprintf("user%d@example.com", seq),
		Password: "hashed",
		Admin:    admin,
		Status:   1,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return &user
}

func createTestCuisine(t *testing.T) *model.Cuisine {
	t.Helper()
	cuisine := model.Cuisine{Name: fmt.Sprintf("Cuisine %d", nextSeq())}
	if err := db.DB.Create(&cuisine).Error; err != nil {
		t.Fatalf("创建菜系失败: %v", err)
	}
	return &cuisine
}

func createTestRestaurant(t *testing.T, submitterID *uint, approved bool) *model.Restaurant {
	t.Helper()
	cuisine := createTestCuisine(t)
	restaurant := model.Restaurant{
		Name:        fmt.Sprintf("Restaurant %d", nextSeq()),
		Description: "A cozy place with great food",
		Address:     "1 Food Street",
		PriceRange:  2,
		CuisineID:   cuisine.ID,
		UserID:      submitterID,
		Approved:    approved,
	}
	if err := db.DB.Create(&restaurant).Error; err != nil {
		t.Fatalf("创建餐厅失败: %v", err)
	}
	return &restaurant
}

func createTestReview(t *testing.T, userID uint, restaurantID uint, rating int, approved bool) *model.Review {
	t.Helper()
	review := model.Review{
		Rating:       rating,
		Content:      "The food was absolutely delicious here",
		UserID:       &userID,
		RestaurantID: restaurantID,
		Approved:     approved,
	}
	if err := db.DB.Create(&review).Error; err != nil {
		t.Fatalf("创建评价失败: %v", err)
	}
	return &review
}

func mustSetSetting(t *testing.T, key string, value string) {
	t.Helper()
	if err := SetSetting(key, value); err != nil {
		t.Fatalf("写入设置 %s 失败: %v", key, err)
	}
}

func recompute(t *testing.T, userID uint) {
	t.Helper()
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return RecomputeUserTx(tx, userID)
	})
	if err != nil {
		t.Fatalf("重算声望失败: %v", err)
	}
}

func reloadUser(t *testing.T, id uint) *model.User {
	t.Helper()
	var user model.User
	if err := db.DB.First(&user, id).Error; err != nil {
		t.Fatalf("读取用户失败: %v", err)
	}
	return &user
}

func autoBadgeNames(t *testing.T, userID uint) []string {
	t.Helper()
	var names []string
	err := db.DB.Model(&model.Badge{}).
		Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ? AND badges.auto = ?", userID, true).
		Pluck("badges.name", &names).Error
	if err != nil {
		t.Fatalf("查询自动徽章失败: %v", err)
	}
	return names
}
