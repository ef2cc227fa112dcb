package model

// Setting 既存普通配置项，也充当功能开关表。
// 开关类 key 不存在记录时视为开启（fail-open）。
type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:64"`
	Value     string `json:"value"`
	Desc      string `json:"desc" gorm:"size:255"`
	Sensitive bool   `json:"sensitive" gorm:"default:false"`
}
