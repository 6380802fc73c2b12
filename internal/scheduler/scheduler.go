package scheduler

import (
	"log"

	"github.com/smartdash/dashboard-api/internal/services"

	"github.com/robfig/cron/v3"
)

// Scheduler handles scheduled maintenance tasks
type Scheduler struct {
	cron        *cron.Cron
	authService *services.AuthService
}

// NewScheduler creates a new scheduler
func NewScheduler(authService *services.AuthService) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		authService: authService,
	}
}

// Start registers the revoked-token purge job and starts the scheduler
func (s *Scheduler) Start(purgeInterval string) error {
	if purgeInterval == "" {
		purgeInterval = "0 3 * * *"
	}

	_, err := s.cron.AddFunc(purgeInterval, func() {
		purged, err := s.authService.PurgeExpiredTokens()
		if err != nil {
			log.Printf("Revoked token purge failed: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("Purged %d expired revoked tokens", purged)
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("Scheduler started with purge interval: %s", purgeInterval)
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Scheduler stopped")
}
