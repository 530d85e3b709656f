package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"size:200;not null;default:'Anonymous'" json:"name"`
	Email      string     `gorm:"size:320" json:"email"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index" json:"parent_id"`
	SessionID  string     `gorm:"size:64;not null" json:"-"`
	IsApproved bool       `gorm:"default:true" json:"is_approved"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsTopLevel reports whether the comment starts a thread rather than
// replying to one.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}
