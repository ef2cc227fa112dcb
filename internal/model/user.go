package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	Username        string         `json:"username" gorm:"unique;not null;size:64"`
	Email           string         `json:"email" gorm:"unique;index;size:255"`
	Password        string         `json:"-" gorm:"not null"`
	Admin           bool           `json:"admin" gorm:"not null"`
	Status          int            `json:"status" gorm:"default:1"` // 1: 正常, 2: 封禁, 3: 停用
	BanReason       *string        `json:"ban_reason,omitempty" gorm:"size:255"`
	ReputationScore *int           `json:"reputation_score"` // nil 表示尚未计算
	Badge           string         `json:"badge" gorm:"size:50"` // 当前等级徽章的冗余缓存，只由徽章服务写入
	Reviews         []Review       `json:"-"`
	UserBadges      []UserBadge    `json:"-"`
}
