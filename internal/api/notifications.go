package api

import (
	"net/http"
	"strconv"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"github.com/gin-gonic/gin"
)

// findOwnedNotification loads the notification by path id, scoped to
// the caller
func (h *Handler) findOwnedNotification(c *gin.Context) (*models.Notification, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid notification id"})
		return nil, false
	}

	user := CurrentUser(c)
	db := database.GetDB()

	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "notification not found"})
		return nil, false
	}

	return &notification, true
}

// ListNotifications retrieves the caller's notifications, newest first
func (h *Handler) ListNotifications(c *gin.Context) {
	user := CurrentUser(c)
	db := database.GetDB()

	var notifications []models.Notification
	if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newNotificationResponses(notifications))
}

// GetNotification retrieves a single notification owned by the caller
func (h *Handler) GetNotification(c *gin.Context) {
	notification, ok := h.findOwnedNotification(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newNotificationResponse(*notification))
}

// UpdateNotification updates the read state of a notification.
// Notifications are system-created; only the read flag is mutable.
func (h *Handler) UpdateNotification(c *gin.Context) {
	notification, ok := h.findOwnedNotification(c)
	if !ok {
		return
	}

	var req struct {
		IsRead *bool `json:"is_read"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	if req.IsRead != nil {
		notification.IsRead = *req.IsRead

		db := database.GetDB()
		if err := db.Save(notification).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, newNotificationResponse(*notification))
}

// MarkRead marks a single notification as read. Idempotent.
func (h *Handler) MarkRead(c *gin.Context) {
	notification, ok := h.findOwnedNotification(c)
	if !ok {
		return
	}

	notification.IsRead = true

	db := database.GetDB()
	if err := db.Save(notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newNotificationResponse(*notification))
}

// MarkAllRead marks every unread notification of the caller as read in
// one bulk update
func (h *Handler) MarkAllRead(c *gin.Context) {
	user := CurrentUser(c)
	db := database.GetDB()

	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

// UnreadCount returns how many of the caller's notifications are unread
func (h *Handler) UnreadCount(c *gin.Context) {
	user := CurrentUser(c)
	db := database.GetDB()

	var count int64
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}
