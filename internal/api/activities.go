package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListActivities retrieves the caller's latest activity log entries
func (h *Handler) ListActivities(c *gin.Context) {
	user := CurrentUser(c)

	activities, err := h.activityService.Latest(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newActivityResponses(activities))
}
