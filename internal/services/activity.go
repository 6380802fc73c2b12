package services

import (
	"fmt"
	"time"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"
)

// MaxActivityEntries caps how many log entries the feed returns
const MaxActivityEntries = 10

// ActivityService records and reads the per-user activity log
type ActivityService struct{}

// NewActivityService creates a new activity service
func NewActivityService() *ActivityService {
	return &ActivityService{}
}

// Record appends one activity log entry for a user
func (s *ActivityService) Record(userID uint, activityType models.ActivityType, icon models.ActivityIcon, title string) error {
	entry := models.Activity{
		UserID: userID,
		Type:   activityType,
		Icon:   icon,
		Title:  title,
	}

	db := database.GetDB()
	if err := db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// Latest returns the user's newest activity entries, newest first
func (s *ActivityService) Latest(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	db := database.GetDB()
	err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(MaxActivityEntries).
		Find(&activities).Error
	return activities, err
}

// TimeAgo buckets the elapsed time since a timestamp into a
// human-readable string
func TimeAgo(from, now time.Time) string {
	diff := now.Sub(from)

	switch {
	case diff >= 24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	case diff >= time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	case diff >= time.Minute:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	default:
		return "moments ago"
	}
}
