package model

import "time"

type Banner struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image" json:"image"`
	Link        string    `db:"link" json:"link"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	IsHero      bool      `db:"is_hero" json:"is_hero"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type CreateBannerRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
	Link        string `json:"link"`
	IsHero      bool   `json:"is_hero"`
}

type UpdateBannerRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
	IsActive    *bool   `json:"is_active"`
	IsHero      *bool   `json:"is_hero"`
}
