package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/ivylu/wanderlog-api/internal/models"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{
		db: db,
	}
}

// Record logs one admin-area mutation. Metadata marshaling failures fall
// back to an empty object rather than dropping the entry.
func (s *ActivityService) Record(activityType models.ActivityType, targetID string, metadata map[string]interface{}) error {
	metadataJSON := "{}"
	if len(metadata) > 0 {
		bytes, err := json.Marshal(metadata)
		if err == nil {
			metadataJSON = string(bytes)
		}
	}

	activity := models.Activity{
		ActivityType: activityType,
		TargetID:     targetID,
		Metadata:     metadataJSON,
	}

	return s.db.Create(&activity).Error
}

func (s *ActivityService) GetRecent(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.Order("created_at desc").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
