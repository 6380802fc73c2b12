package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"gorm.io/gorm"
)

// ErrAlreadySeeded is returned when the fixtures are already present
var ErrAlreadySeeded = errors.New("seed data already exists")

// SeedService populates development fixtures
type SeedService struct {
	authService *AuthService
}

// NewSeedService creates a new seed service
func NewSeedService(authService *AuthService) *SeedService {
	return &SeedService{authService: authService}
}

// Seed creates the admin account with sample tasks, notifications,
// activities and statistics. The whole seed runs in one transaction so
// a failure cannot leave partial fixtures behind. It is a no-op when
// the admin account already exists.
func (s *SeedService) Seed() error {
	db := database.GetDB()

	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return ErrAlreadySeeded
	}

	hashedPassword, err := s.authService.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Username:  "admin",
			Email:     "admin@example.com",
			Password:  hashedPassword,
			FirstName: "Ahmed",
			LastName:  "Mohamed",
			Role:      "admin",
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
			IsActive:  true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		tasks := []models.Task{
			{UserID: admin.ID, Title: "Prepare the monthly sales report", Priority: models.PriorityHigh, DueDate: dateOf(2026, time.January, 14)},
			{UserID: admin.ID, Title: "Meeting with the development team", Priority: models.PriorityMedium, DueDate: dateOf(2026, time.January, 13)},
			{UserID: admin.ID, Title: "Review new client contracts", Priority: models.PriorityLow, DueDate: dateOf(2026, time.January, 15), Completed: true},
			{UserID: admin.ID, Title: "Update the user interface", Priority: models.PriorityHigh, DueDate: dateOf(2026, time.January, 16)},
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return err
		}

		notifications := []models.Notification{
			{UserID: admin.ID, Title: "New order", Description: "A new purchase order was received from Ahmed Ali", Type: models.NotificationInfo},
			{UserID: admin.ID, Title: "System update", Description: "The system was successfully updated to version 2.5", Type: models.NotificationSuccess},
			{UserID: admin.ID, Title: "Security alert", Description: "A sign in from a new device was detected", Type: models.NotificationWarning},
			{UserID: admin.ID, Title: "Payment received", Description: "A payment of $5,000 was received", Type: models.NotificationSuccess, IsRead: true},
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return err
		}

		activities := []models.Activity{
			{UserID: admin.ID, Type: models.ActivitySuccess, Icon: models.IconCheck, Title: "Project completed successfully"},
			{UserID: admin.ID, Type: models.ActivityInfo, Icon: models.IconUser, Title: "A new member joined the team"},
			{UserID: admin.ID, Type: models.ActivityWarning, Icon: models.IconAlert, Title: "Reminder: delivery deadline approaching"},
			{UserID: admin.ID, Type: models.ActivityDanger, Icon: models.IconX, Title: "Failed to process payment"},
		}
		if err := tx.Create(&activities).Error; err != nil {
			return err
		}

		stats := SampleStatistics(time.Now())
		return tx.Create(&stats).Error
	})
}

func dateOf(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
