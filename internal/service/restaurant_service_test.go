package service

import (
	"testing"

	"yalla-server/internal/common"
)

// 测试内容：验证公开列表只包含已上架餐厅并带评分聚合。
func TestListRestaurants_ApprovedOnlyWithAggregates(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, false)
	approved := createTestRestaurant(t, nil, true)
	createTestRestaurant(t, nil, false) // 待审核，不应出现

	createTestReview(t, user.ID, approved.ID, 4, true)
	other := createTestUser(t, false)
	createTestReview(t, other.ID, approved.ID, 5, true)

	items, total, err := ListRestaurants(RestaurantListParams{})
	if err != nil {
		t.Fatalf("获取列表失败: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("期望 1 家餐厅，实际 total=%d len=%d", total, len(items))
	}
	if items[0].ID != approved.ID {
		t.Fatalf("期望餐厅 %d，实际为 %d", approved.ID, items[0].ID)
	}
	if items[0].ReviewCount != 2 {
		t.Fatalf("期望 2 条评价，实际为 %d", items[0].ReviewCount)
	}
	if items[0].AvgRating != 4.5 {
		t.Fatalf("期望平均分 4.5，实际为 %v", items[0].AvgRating)
	}
}

// 测试内容：验证最低评分筛选在聚合后生效。
func TestListRestaurants_MinRatingFilter(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, false)
	good := createTestRestaurant(t, nil, true)
	bad := createTestRestaurant(t, nil, true)
	createTestReview(t, user.ID, good.ID, 5, true)
	other := createTestUser(t, false)
	createTestReview(t, other.ID, bad.ID, 2, true)

	items, _, err := ListRestaurants(RestaurantListParams{MinRating: 4})
	if err != nil {
		t.Fatalf("获取列表失败: %v", err)
	}
	if len(items) != 1 || items[0].ID != good.ID {
		t.Fatalf("期望只剩高分餐厅 %d，实际为 %v", good.ID, items)
	}
}

// 测试内容：验证待审核评价在详情页的可见性规则。
func TestGetRestaurantDetail_PendingReviewVisibility(t *testing.T) {
	setupTestDB(t)

	author := createTestUser(t, false)
	stranger := createTestUser(t, false)
	adminUser := createTestUser(t, true)
	restaurant := createTestRestaurant(t, nil, true)

	createTestReview(t, author.ID, restaurant.ID, 4, true)
	createTestReview(t, stranger.ID, restaurant.ID, 3, false) // stranger 的待审核评价

	// 游客只能看到已发布评价
	detail, err := GetRestaurantDetail(restaurant.ID, nil)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if len(detail.Reviews) != 1 {
		t.Fatalf("游客期望 1 条评价，实际为 %d", len(detail.Reviews))
	}

	// 待审核评价的作者能看到自己的
	detail, err = GetRestaurantDetail(restaurant.ID, stranger)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if len(detail.Reviews) != 2 {
		t.Fatalf("作者期望 2 条评价，实际为 %d", len(detail.Reviews))
	}

	// 管理员全量可见
	detail, err = GetRestaurantDetail(restaurant.ID, adminUser)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if len(detail.Reviews) != 2 {
		t.Fatalf("管理员期望 2 条评价，实际为 %d", len(detail.Reviews))
	}
}

// 测试内容：验证待审核餐厅详情对游客与陌生用户返回 not_found。
func TestGetRestaurantDetail_PendingRestaurantHidden(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, false)
	stranger := createTestUser(t, false)
	restaurant := createTestRestaurant(t, &owner.ID, false)

	_, err := GetRestaurantDetail(restaurant.ID, nil)
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Fatalf("游客期望 not_found，实际为 %v", err)
	}

	_, err = GetRestaurantDetail(restaurant.ID, stranger)
	serviceErr, ok = common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Fatalf("陌生用户期望 not_found，实际为 %v", err)
	}

	if _, err := GetRestaurantDetail(restaurant.ID, owner); err != nil {
		t.Fatalf("提交者本人应可见: %v", err)
	}
}

// 测试内容：验证搜索空关键字返回空列表。
func TestSearchRestaurants_EmptyKeyword(t *testing.T) {
	setupTestDB(t)

	items, err := SearchRestaurants("")
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("期望空结果，实际为 %d 条", len(items))
	}
}

// 测试内容：验证待审核队列只包含未上架餐厅与未发布评价。
func TestPendingQueues(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, false)
	approved := createTestRestaurant(t, nil, true)
	pending := createTestRestaurant(t, nil, false)
	createTestReview(t, user.ID, approved.ID, 4, true)
	other := createTestUser(t, false)
	createTestReview(t, other.ID, approved.ID, 3, false)

	restaurants, err := ListPendingRestaurants()
	if err != nil {
		t.Fatalf("获取待审核餐厅失败: %v", err)
	}
	if len(restaurants) != 1 || restaurants[0].ID != pending.ID {
		t.Fatalf("期望待审核餐厅 %d，实际为 %v", pending.ID, restaurants)
	}

	reviews, err := ListPendingReviews()
	if err != nil {
		t.Fatalf("获取待审核评价失败: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Approved {
		t.Fatalf("期望 1 条待审核评价，实际为 %v", reviews)
	}
}
