package service

import (
	"strconv"
	"sync"
	"yalla-server/internal/consts"
	"yalla-server/internal/model"
	"yalla-server/internal/repository"
)

var (
	// 内存缓存
	settingsCache sync.Map
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Yalla", Desc: "网站名称"},
	{Key: consts.ConfigSiteDescription, Value: "Discover and review the best restaurants in town", Desc: "网站描述"},
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "是否开放注册 (true/false)"},
	{Key: consts.FeatureReviews, Value: "true", Desc: "是否允许发布评价 (true/false)"},
	{Key: consts.FeatureRestaurantSubmissions, Value: "true", Desc: "是否允许用户提交餐厅 (true/false)"},
	{Key: consts.FeatureReviewApproval, Value: "false", Desc: "评价是否需要审核后才公开 (true/false)"},
	{Key: consts.FeatureRestaurantApproval, Value: "true", Desc: "非管理员提交的餐厅是否需要审核 (true/false)"},
	{Key: consts.FeatureMaintenanceMode, Value: "false", Desc: "维护模式 (true/false)"},
	{Key: consts.ConfigReputationBadgeMode, Value: consts.BadgeModeScore, Desc: "徽章计算模式 (score/count)"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "2", Desc: "认证接口突发请求限制"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "最大请求体限制 (MB)"},
}

func ClearCache() {
	settingsCache.Range(func(key, value interface{}) bool {
		settingsCache.Delete(key)
		return true
	})
}

func InitializeSettings() {
	repository.Setting.InitializeDefaults(DefaultSettings)
}

func GetString(key string) string {
	if val, ok := settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			settingsCache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	setting, err := repository.Setting.FindByKey(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		for _, def := range DefaultSettings {
			if def.Key == key {
				// 查到了默认值，写入数据库并写入缓存
				newSetting := def
				// 尝试写入数据库 (忽略错误，防止并发写入导致的主键冲突)
				_ = repository.Setting.Create(&newSetting)

				settingsCache.Store(key, newSetting.Value)
				return newSetting.Value
			}
		}

		// 没查到，往缓存里存 DefaultValueNotFound 标记
		settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}
	// 数据库查到，写入缓存
	settingsCache.Store(key, setting.Value)

	return setting.Value
}

func GetInt(key string) int {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func GetFloat64(key string) float64 {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func GetBool(key string) bool {
	valStr := GetString(key)
	if valStr == "" {
		return false
	}

	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}

// FeatureEnabled 功能开关查询。
// 与 GetBool 不同：开关既无记录也无默认值时按"开启"处理（fail-open），
// 新上线的能力在管理员显式关闭前默认可用。
func FeatureEnabled(key string) bool {
	valStr := GetString(key)
	if valStr == "" {
		return true
	}

	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return true
	}
	return val
}

// SetSetting 写入配置并使进程内缓存与 Redis 失效广播。
func SetSetting(key string, value string) error {
	if err := repository.Setting.Upsert(key, value); err != nil {
		return err
	}

	ClearCache()
	publishSettingsInvalidation()
	return nil
}
