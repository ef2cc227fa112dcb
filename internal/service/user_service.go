package service

import (
	"errors"
	"yalla-server/internal/common"
	"yalla-server/internal/model"
	"yalla-server/internal/repository"

	"gorm.io/gorm"
)

type UserProfile struct {
	User           *model.User    `json:"user"`
	Reviews        []model.Review `json:"reviews"`
	Badges         []model.Badge  `json:"badges"`
	EffectiveBadge string         `json:"effective_badge"`
}

// GetProfile 公开用户主页：基础信息、评价历史与徽章。
func GetProfile(username string) (*UserProfile, error) {
	user, err := repository.User.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, common.NewInternalError("获取用户失败")
	}

	reviews, err := repository.Review.ListForUser(user.ID)
	if err != nil {
		return nil, common.NewInternalError("获取评价历史失败")
	}

	badges, err := repository.Badge.ListForUser(user.ID)
	if err != nil {
		return nil, common.NewInternalError("获取徽章失败")
	}

	effective, err := EffectiveBadge(user.ID)
	if err != nil {
		return nil, common.NewInternalError("获取徽章失败")
	}

	return &UserProfile{
		User:           user,
		Reviews:        reviews,
		Badges:         badges,
		EffectiveBadge: effective,
	}, nil
}

// TopReviewers 首页的活跃用户排行。
func TopReviewers(limit int) ([]model.User, error) {
	if limit < 1 {
		limit = 4
	}
	users, err := repository.User.TopReviewers(limit)
	if err != nil {
		return nil, common.NewInternalError("获取排行失败")
	}
	return users, nil
}

type AdminUserListParams struct {
	Page     int
	PageSize int
	Keyword  string
	Order    string
}

// AdminListUsers 按分页与筛选条件查询用户列表。
func AdminListUsers(params AdminUserListParams) ([]model.User, int64, error) {
	page := params.Page
	pageSize := params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	sortOrder := "id desc"
	if params.Order == "asc" {
		sortOrder = "id asc"
	}

	users, total, err := repository.User.ListUsers(params.Keyword, sortOrder, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, common.NewInternalError("获取用户列表失败")
	}
	return users, total, nil
}

// AdminGetUserDetail 根据用户 ID 获取详情。
func AdminGetUserDetail(id uint) (*model.User, error) {
	user, err := repository.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, common.NewInternalError("获取用户详情失败")
	}
	return user, nil
}
