package service

import (
	"runtime"
	"yalla-server/internal/common"
	"yalla-server/internal/repository"
)

type SystemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStats struct {
	RestaurantCount int64      `json:"restaurant_count"`
	ReviewCount     int64      `json:"review_count"`
	UserCount       int64      `json:"user_count"`
	SystemInfo      SystemInfo `json:"system_info"`
}

// GetServerStatsForAdmin 获取后台仪表盘统计数据。
func GetServerStatsForAdmin() (*ServerStats, error) {
	restaurantCount, err := repository.Restaurant.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计餐厅数量失败")
	}

	reviewCount, err := repository.Review.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计评价数量失败")
	}

	userCount, err := repository.User.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计用户数量失败")
	}

	return &ServerStats{
		RestaurantCount: restaurantCount,
		ReviewCount:     reviewCount,
		UserCount:       userCount,
		SystemInfo: SystemInfo{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}

// ListSettingsForAdmin 获取全部系统设置（敏感项脱敏）。
func ListSettingsForAdmin() ([]SettingView, error) {
	settings, err := repository.Setting.FindAll()
	if err != nil {
		return nil, common.NewInternalError("获取设置失败")
	}

	views := make([]SettingView, 0, len(settings))
	for _, s := range settings {
		view := SettingView{Key: s.Key, Value: s.Value, Desc: s.Desc, Sensitive: s.Sensitive}
		if s.Sensitive {
			view.Value = MaskedSettingValue
		}
		views = append(views, view)
	}
	return views, nil
}

type SettingView struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Desc      string `json:"desc"`
	Sensitive bool   `json:"sensitive"`
}

const MaskedSettingValue = "**********"

type UpdateSettingPayload struct {
	Key   string
	Value string
}

// UpdateSettingsForAdmin 批量更新系统设置，并在成功后清理配置缓存。
func UpdateSettingsForAdmin(items []UpdateSettingPayload) error {
	updates := make([]repository.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		updates = append(updates, repository.UpdateSettingItem{Key: item.Key, Value: item.Value})
	}

	if err := repository.Setting.UpdateSettings(updates, MaskedSettingValue); err != nil {
		return common.NewInternalError("更新设置失败")
	}

	ClearCache()
	publishSettingsInvalidation()
	return nil
}
