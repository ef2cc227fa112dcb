package service

import (
	"errors"
	"yalla-server/internal/common"
	"yalla-server/internal/db"
	"yalla-server/internal/model"
	"yalla-server/internal/repository"

	"gorm.io/gorm"
)

// defaultCuisines 初始菜系，首次启动时写入。
var defaultCuisines = []string{
	"Saudi", "Italian", "Mexican", "Asian", "American",
	"Mediterranean", "Indian", "Lebanese", "Turkish", "Fast Food",
}

// InitializeCuisines 确保默认菜系存在。
func InitializeCuisines() {
	for _, name := range defaultCuisines {
		var count int64
		db.DB.Model(&model.Cuisine{}).Where("name = ?", name).Count(&count)
		if count == 0 {
			db.DB.Create(&model.Cuisine{Name: name})
		}
	}
}

// 公开的餐厅查询。所有公共列表/搜索只返回已上架餐厅。

type RestaurantListItem struct {
	model.Restaurant
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

type RestaurantDetail struct {
	RestaurantListItem
	Reviews []model.Review `json:"reviews"`
}

type RestaurantListParams struct {
	CuisineID uint
	Price     int
	MinRating int
	Keyword   string
	Page      int
	PageSize  int
}

// ListRestaurants 公开餐厅列表。
// 评分筛选在聚合之后过滤（评分是评价表的派生值）。
func ListRestaurants(params RestaurantListParams) ([]RestaurantListItem, int64, error) {
	page := params.Page
	pageSize := params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	restaurants, total, err := repository.Restaurant.ListApproved(repository.RestaurantListParams{
		CuisineID: params.CuisineID,
		Price:     params.Price,
		Keyword:   params.Keyword,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
	})
	if err != nil {
		return nil, 0, common.NewInternalError("获取餐厅列表失败")
	}

	items := make([]RestaurantListItem, 0, len(restaurants))
	for _, r := range restaurants {
		item, err := decorateRestaurant(r)
		if err != nil {
			return nil, 0, err
		}
		if params.MinRating > 0 && item.AvgRating < float64(params.MinRating) {
			continue
		}
		items = append(items, item)
	}

	return items, total, nil
}

// SearchRestaurants 按名称搜索已上架餐厅。
func SearchRestaurants(keyword string) ([]RestaurantListItem, error) {
	if keyword == "" {
		return []RestaurantListItem{}, nil
	}

	items, _, err := ListRestaurants(RestaurantListParams{Keyword: keyword, PageSize: 100})
	return items, err
}

// GetRestaurantDetail 餐厅详情。
// 待审核餐厅只对提交者与管理员可见；待审核评价只对其作者与管理员可见。
func GetRestaurantDetail(id uint, actor *model.User) (*RestaurantDetail, error) {
	restaurant, err := repository.Restaurant.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("餐厅不存在")
		}
		return nil, common.NewInternalError("获取餐厅失败")
	}

	if !RestaurantVisibleTo(restaurant, actor) {
		return nil, common.NewNotFoundError("餐厅不存在")
	}

	includePending := actor != nil && actor.Admin
	reviews, err := repository.Review.ListForRestaurant(id, includePending)
	if err != nil {
		return nil, common.NewInternalError("获取评价失败")
	}

	// 非管理员作者可以看到自己的待审核评价
	if !includePending && actor != nil {
		pending, err := repository.Review.ListForRestaurant(id, true)
		if err != nil {
			return nil, common.NewInternalError("获取评价失败")
		}
		reviews = reviews[:0]
		for _, rv := range pending {
			if rv.Approved || (rv.UserID != nil && *rv.UserID == actor.ID) {
				reviews = append(reviews, rv)
			}
		}
	}

	item, err := decorateRestaurant(*restaurant)
	if err != nil {
		return nil, err
	}

	return &RestaurantDetail{RestaurantListItem: item, Reviews: reviews}, nil
}

// ListCuisines 菜系列表。
func ListCuisines() ([]model.Cuisine, error) {
	cuisines, err := repository.Cuisine.FindAll()
	if err != nil {
		return nil, common.NewInternalError("获取菜系列表失败")
	}
	return cuisines, nil
}

// ListPendingRestaurants 管理后台待审核队列。
func ListPendingRestaurants() ([]model.Restaurant, error) {
	restaurants, err := repository.Restaurant.ListPending()
	if err != nil {
		return nil, common.NewInternalError("获取待审核餐厅失败")
	}
	return restaurants, nil
}

// ListPendingReviews 管理后台待审核评价队列。
func ListPendingReviews() ([]model.Review, error) {
	reviews, err := repository.Review.ListPending()
	if err != nil {
		return nil, common.NewInternalError("获取待审核评价失败")
	}
	return reviews, nil
}

func decorateRestaurant(r model.Restaurant) (RestaurantListItem, error) {
	avg, err := repository.Restaurant.AvgRating(r.ID)
	if err != nil {
		return RestaurantListItem{}, common.NewInternalError("统计评分失败")
	}

	reviews, err := repository.Review.ListForRestaurant(r.ID, false)
	if err != nil {
		return RestaurantListItem{}, common.NewInternalError("统计评价失败")
	}

	return RestaurantListItem{
		Restaurant:  r,
		AvgRating:   avg,
		ReviewCount: len(reviews),
	}, nil
}
