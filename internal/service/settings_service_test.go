package service

import (
	"testing"

	"yalla-server/internal/consts"
	"yalla-server/internal/db"
	"yalla-server/internal/model"
)

// 测试内容：验证读取字符串设置时会插入默认值并与数据库一致。
func TestGetString_DefaultSettingInserted(t *testing.T) {
	setupTestDB(t)

	ClearCache()
	val := GetString(consts.ConfigSiteName)
	if val == "" {
		t.Fatalf("期望 default site_name to be non-empty")
	}

	var s model.Setting
	if err := db.DB.Where("key = ?", consts.ConfigSiteName).First(&s).Error; err != nil {
		t.Fatalf("期望 default setting row to be created: %v", err)
	}
	if s.Value != val {
		t.Fatalf("db value mismatch: got=%q 期望=%q", s.Value, val)
	}
}

// 测试内容：验证未知 key 返回空值且缓存未找到结果。
func TestGetString_UnknownKeyReturnsEmpty(t *testing.T) {
	setupTestDB(t)

	ClearCache()
	val := GetString("unknown_key_not_exists")
	if val != "" {
		t.Fatalf("期望 empty for unknown key，实际为 %q", val)
	}
	// 第二次调用仍应返回空值（缓存了未找到标记）。
	val2 := GetString("unknown_key_not_exists")
	if val2 != "" {
		t.Fatalf("期望 empty for unknown key，实际为 %q", val2)
	}
}

// 测试内容：验证整数配置解析失败时返回 0。
func TestGetInt_ParseFailureReturnsZero(t *testing.T) {
	gdb := setupTestDB(t)

	_ = gdb.Create(&model.Setting{Key: "k", Value: "not-int"}).Error
	ClearCache()

	if got := GetInt("k"); got != 0 {
		t.Fatalf("期望 0 for parse failure，实际为 %d", got)
	}
}

// 测试内容：验证布尔配置读取（无记录无默认值时为 false）。
func TestGetBool_MissingKeyFalse(t *testing.T) {
	setupTestDB(t)

	if GetBool("no_such_flag") {
		t.Fatal("期望 false，实际为 true")
	}
}

// 测试内容：验证功能开关在无记录无默认值时按开启处理。
func TestFeatureEnabled_UnknownKeyFailOpen(t *testing.T) {
	setupTestDB(t)

	if !FeatureEnabled("brand_new_feature") {
		t.Fatal("未知开关期望开启（fail-open），实际为关闭")
	}
}

// 测试内容：验证功能开关的值无法解析时同样按开启处理。
func TestFeatureEnabled_GarbageValueFailOpen(t *testing.T) {
	gdb := setupTestDB(t)

	_ = gdb.Create(&model.Setting{Key: "odd_flag", Value: "banana"}).Error
	ClearCache()

	if !FeatureEnabled("odd_flag") {
		t.Fatal("无法解析的开关期望开启，实际为关闭")
	}
}

// 测试内容：验证显式关闭的功能开关返回关闭。
func TestFeatureEnabled_ExplicitlyDisabled(t *testing.T) {
	setupTestDB(t)

	mustSetSetting(t, consts.FeatureReviews, "false")
	if FeatureEnabled(consts.FeatureReviews) {
		t.Fatal("期望关闭，实际为开启")
	}
}

// 测试内容：验证写入设置后缓存立即失效，读取返回新值。
func TestSetSetting_InvalidatesCache(t *testing.T) {
	setupTestDB(t)

	if got := GetString(consts.ConfigSiteName); got != "Yalla" {
		t.Fatalf("期望默认值 Yalla，实际为 %q", got)
	}

	mustSetSetting(t, consts.ConfigSiteName, "Yalla Eats")
	if got := GetString(consts.ConfigSiteName); got != "Yalla Eats" {
		t.Fatalf("期望新值 Yalla Eats，实际为 %q", got)
	}
}

// 测试内容：验证 ToggleFeature 会为不存在的开关创建记录。
func TestToggleFeature_CreatesRow(t *testing.T) {
	setupTestDB(t)

	if err := ToggleFeature("experimental_flag", false); err != nil {
		t.Fatalf("切换开关失败: %v", err)
	}

	var s model.Setting
	if err := db.DB.Where("key = ?", "experimental_flag").First(&s).Error; err != nil {
		t.Fatalf("期望开关记录已创建: %v", err)
	}
	if s.Value != "false" {
		t.Fatalf("期望 false，实际为 %q", s.Value)
	}
	if FeatureEnabled("experimental_flag") {
		t.Fatal("期望关闭，实际为开启")
	}
}
