package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ListStatistics retrieves all daily statistics rows, newest date first
func (h *Handler) ListStatistics(c *gin.Context) {
	db := database.GetDB()

	var stats []models.Statistics
	if err := db.Order("record_date desc").Find(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetStatistics retrieves a single statistics row
func (h *Handler) GetStatistics(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid statistics id"})
		return
	}

	db := database.GetDB()

	var stats models.Statistics
	if err := db.First(&stats, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "statistics not found"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Dashboard returns the aggregated dashboard view over the most recent
// statistics row, creating a sample row when the table is empty
func (h *Handler) Dashboard(c *gin.Context) {
	latest, err := h.statsService.LatestOrSeed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_revenue":      latest.Revenue,
		"active_users":       latest.ActiveUsers,
		"completed_projects": latest.CompletedProjects,
		"conversion_rate":    latest.ConversionRate,
		"total_sales":        latest.TotalSales(),
		"sales_distribution": gin.H{
			"products":      latest.ProductsSales,
			"services":      latest.ServicesSales,
			"subscriptions": latest.SubscriptionsSales,
			"consulting":    latest.ConsultingSales,
		},
	})
}

// Chart returns the performance overview series for the requested
// period (week, month or year; week by default)
func (h *Handler) Chart(c *gin.Context) {
	period := c.DefaultQuery("period", "week")
	c.JSON(http.StatusOK, h.statsService.Chart(period, time.Now()))
}
