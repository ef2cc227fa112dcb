package model

import (
	"time"
)

type Cuisine struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"unique;not null;size:50"`

	Restaurants []Restaurant `json:"-"`
}

type Restaurant struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
	Name         string    `json:"name" gorm:"not null;index;size:100"`
	Description  string    `json:"description"`
	Address      string    `json:"address" gorm:"size:200"`
	Phone        string    `json:"phone" gorm:"size:20"`
	WorkingHours string    `json:"working_hours" gorm:"size:100"`
	PriceRange   int       `json:"price_range" gorm:"default:2"` // 1–4
	CuisineID    uint      `json:"cuisine_id" gorm:"not null;index"`
	Cuisine      Cuisine   `json:"-" gorm:"foreignKey:CuisineID"`
	ImageURL     string    `json:"image_url" gorm:"size:500"`

	// 提交者，可能为空（种子数据或账号已注销）
	UserID    *uint `json:"user_id"`
	Submitter *User `json:"-" gorm:"foreignKey:UserID"`

	IsSmallBusiness bool `json:"is_small_business" gorm:"default:false"`
	HasVegetarian   bool `json:"has_vegetarian" gorm:"default:false"`
	HasVegan        bool `json:"has_vegan" gorm:"default:false"`
	IsHalal         bool `json:"is_halal" gorm:"default:true"`
	HasGlutenFree   bool `json:"has_gluten_free" gorm:"default:false"`

	// 审核与运营位。Featured/Promoted 只影响排序，和审核状态互不相关。
	Approved   bool       `json:"approved" gorm:"default:false;index"`
	Featured   bool       `json:"featured" gorm:"default:false"`
	Promoted   bool       `json:"promoted" gorm:"default:false"`
	ApprovedBy *uint      `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`

	Reviews []Review `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
