package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityPostUpdated    ActivityType = "post_updated"
	ActivityContentUpdated ActivityType = "content_updated"
	ActivityCoverUpdated   ActivityType = "cover_updated"
	ActivityImageUploaded  ActivityType = "image_uploaded"
	ActivityImageDeleted   ActivityType = "image_deleted"
	ActivityCommentDeleted ActivityType = "comment_deleted"
)

// Activity is one admin-area mutation, kept for the audit tail.
type Activity struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ActivityType ActivityType `gorm:"size:50;not null" json:"activity_type"`
	TargetID     string       `gorm:"size:100" json:"target_id"`
	Metadata     string       `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
