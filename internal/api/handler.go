package api

import (
	"net/http"

	"github.com/smartdash/dashboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler holds service dependencies
type Handler struct {
	authService     *services.AuthService
	activityService *services.ActivityService
	statsService    *services.StatsService
	seedService     *services.SeedService
}

// NewHandler creates a new API handler
func NewHandler(authService *services.AuthService, activityService *services.ActivityService, statsService *services.StatsService, seedService *services.SeedService) *Handler {
	return &Handler{
		authService:     authService,
		activityService: activityService,
		statsService:    statsService,
		seedService:     seedService,
	}
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SeedData populates development fixtures. Calling it again once the
// admin account exists is a no-op.
func (h *Handler) SeedData(c *gin.Context) {
	if err := h.seedService.Seed(); err != nil {
		if err == services.ErrAlreadySeeded {
			c.JSON(http.StatusOK, gin.H{"message": "seed data already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "seed data created successfully"})
}
