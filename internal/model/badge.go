package model

import "time"

type Badge struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"unique;not null;size:50"`
	Description string `json:"description" gorm:"size:255"`
	Hierarchy   int    `json:"hierarchy" gorm:"default:0"` // 自定义徽章展示优先级，数值大的优先
	Auto        bool   `json:"auto" gorm:"default:false"`  // true 表示由声望系统自动颁发的等级徽章
}

type UserBadge struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_badges_pair"`
	BadgeID   uint      `json:"badge_id" gorm:"not null;uniqueIndex:idx_user_badges_pair"`
	Badge     Badge     `json:"-" gorm:"foreignKey:BadgeID;constraint:OnDelete:CASCADE;"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
