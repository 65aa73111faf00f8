package domain

import "time"

type BannerType string

const (
	BannerCenter   BannerType = "center"
	BannerParallax BannerType = "parallax"
)

// BannerImage is homepage hero imagery. The center/parallax count limits
// are checked at creation time in the banner service, not by the store.
type BannerImage struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Type         BannerType `json:"type"`
	DisplayOrder int        `json:"display_order"`
	ScrollStart  *int       `json:"scroll_start,omitempty"`
	ScrollEnd    *int       `json:"scroll_end,omitempty"`
	ImageURL     string     `json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
