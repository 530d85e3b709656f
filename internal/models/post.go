package models

import "time"

// Travelogue is the editable metadata of a travel post. Rows are seeded
// from the compiled-in catalog and then owned by the admin area; the HTML
// body lives on the filesystem, not here.
type Travelogue struct {
	ID          string    `gorm:"size:100;primary_key" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        string    `gorm:"size:10" json:"date"`
	CoverImage  string    `gorm:"size:500" json:"cover_image"`
	Route       string    `gorm:"size:200" json:"route"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Travelogue) TableName() string {
	return "travelogues"
}

// DailyLife is a daily-life post. Same shape as Travelogue but kept as its
// own table, matching the separate collection the site always used.
type DailyLife struct {
	ID          string    `gorm:"size:100;primary_key" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        string    `gorm:"size:10" json:"date"`
	CoverImage  string    `gorm:"size:500" json:"cover_image"`
	Route       string    `gorm:"size:200" json:"route"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (DailyLife) TableName() string {
	return "daily_life"
}
