package api

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"github.com/gin-gonic/gin"
)

const dueDateLayout = "2006-01-02"

// findOwnedTask loads the task by path id, scoped to the caller.
// Tasks owned by other users are indistinguishable from missing ones.
func (h *Handler) findOwnedTask(c *gin.Context) (*models.Task, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid task id"})
		return nil, false
	}

	user := CurrentUser(c)
	db := database.GetDB()

	var task models.Task
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "task not found"})
		return nil, false
	}

	return &task, true
}

// ListTasks retrieves the caller's tasks, most recent first
func (h *Handler) ListTasks(c *gin.Context) {
	user := CurrentUser(c)
	db := database.GetDB()

	var tasks []models.Task
	if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newTaskResponses(tasks))
}

// CreateTask adds a new task for the caller
func (h *Handler) CreateTask(c *gin.Context) {
	var req struct {
		Title     string              `json:"title"`
		Priority  models.TaskPriority `json:"priority"`
		DueDate   string              `json:"due_date"`
		Completed bool                `json:"completed"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"title": "this field is required"})
		return
	}

	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"priority": "priority must be one of low, medium or high"})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"due_date": "due date must be formatted as YYYY-MM-DD"})
			return
		}
		dueDate = &parsed
	}

	user := CurrentUser(c)
	task := models.Task{
		UserID:    user.ID,
		Title:     req.Title,
		Priority:  req.Priority,
		DueDate:   dueDate,
		Completed: req.Completed,
	}

	db := database.GetDB()
	if err := db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.activityService.Record(user.ID, models.ActivityInfo, models.IconCheck, "Created task: "+task.Title); err != nil {
		log.Printf("Warning: %v", err)
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// GetTask retrieves a single task owned by the caller
func (h *Handler) GetTask(c *gin.Context) {
	task, ok := h.findOwnedTask(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(*task))
}

// UpdateTask updates fields of a task owned by the caller
func (h *Handler) UpdateTask(c *gin.Context) {
	task, ok := h.findOwnedTask(c)
	if !ok {
		return
	}

	var req struct {
		Title     *string              `json:"title"`
		Priority  *models.TaskPriority `json:"priority"`
		DueDate   *string              `json:"due_date"`
		Completed *bool                `json:"completed"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"title": "this field is required"})
			return
		}
		task.Title = *req.Title
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"priority": "priority must be one of low, medium or high"})
			return
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			parsed, err := time.Parse(dueDateLayout, *req.DueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"due_date": "due date must be formatted as YYYY-MM-DD"})
				return
			}
			task.DueDate = &parsed
		}
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	db := database.GetDB()
	if err := db.Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := CurrentUser(c)
	if err := h.activityService.Record(user.ID, models.ActivitySuccess, models.IconCheck, "Updated task: "+task.Title); err != nil {
		log.Printf("Warning: %v", err)
	}

	c.JSON(http.StatusOK, newTaskResponse(*task))
}

// DeleteTask removes a task owned by the caller
func (h *Handler) DeleteTask(c *gin.Context) {
	task, ok := h.findOwnedTask(c)
	if !ok {
		return
	}

	db := database.GetDB()
	if err := db.Delete(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := CurrentUser(c)
	if err := h.activityService.Record(user.ID, models.ActivityWarning, models.IconX, "Deleted task: "+task.Title); err != nil {
		log.Printf("Warning: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

// ToggleTask flips a task's completion flag
func (h *Handler) ToggleTask(c *gin.Context) {
	task, ok := h.findOwnedTask(c)
	if !ok {
		return
	}

	task.Completed = !task.Completed

	db := database.GetDB()
	if err := db.Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	activityType := models.ActivityInfo
	title := "Reopened task: " + task.Title
	if task.Completed {
		activityType = models.ActivitySuccess
		title = "Completed task: " + task.Title
	}

	user := CurrentUser(c)
	if err := h.activityService.Record(user.ID, activityType, models.IconCheck, title); err != nil {
		log.Printf("Warning: %v", err)
	}

	c.JSON(http.StatusOK, newTaskResponse(*task))
}

// TaskProgress summarizes the caller's task completion
func (h *Handler) TaskProgress(c *gin.Context) {
	user := CurrentUser(c)
	db := database.GetDB()

	var total int64
	db.Model(&models.Task{}).Where("user_id = ?", user.ID).Count(&total)

	var completed int64
	db.Model(&models.Task{}).Where("user_id = ? AND completed = ?", user.ID, true).Count(&completed)

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      total,
		"completed":  completed,
		"percentage": percentage,
	})
}
