package model

import (
	"time"
)

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Rating    int       `json:"rating" gorm:"not null"` // 1–5
	Title     string    `json:"title" gorm:"size:100"`
	Content   string    `json:"content" gorm:"not null"`

	// 作者，可为空：用户注销后保留评价
	UserID *uint `json:"user_id" gorm:"uniqueIndex:idx_reviews_user_restaurant"`
	Author *User `json:"-" gorm:"foreignKey:UserID"`

	RestaurantID uint       `json:"restaurant_id" gorm:"not null;index;uniqueIndex:idx_reviews_user_restaurant"`
	Restaurant   Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`

	Approved         bool `json:"approved" gorm:"default:true;index"`
	ReceiptConfirmed bool `json:"receipt_confirmed" gorm:"default:false"` // 上传小票的信任信号
}
