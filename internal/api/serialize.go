package api

import (
	"time"

	"github.com/smartdash/dashboard-api/internal/models"
	"github.com/smartdash/dashboard-api/internal/services"
)

// userResponse is the wire representation of an account
type userResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
}

func newUserResponse(u models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}

// taskResponse adds the formatted due date to the task entity
type taskResponse struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Priority      models.TaskPriority `json:"priority"`
	DueDate       *time.Time          `json:"due_date"`
	Completed     bool                `json:"completed"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	FormattedDate *string             `json:"formatted_date"`
}

func newTaskResponse(t models.Task) taskResponse {
	resp := taskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  t.Priority,
		DueDate:   t.DueDate,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.DueDate != nil {
		formatted := t.DueDate.Format("2 January")
		resp.FormattedDate = &formatted
	}
	return resp
}

func newTaskResponses(tasks []models.Task) []taskResponse {
	responses := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, newTaskResponse(t))
	}
	return responses
}

// notificationResponse adds the elapsed-time string to the entity
type notificationResponse struct {
	ID          uint                    `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Type        models.NotificationType `json:"type"`
	IsRead      bool                    `json:"is_read"`
	CreatedAt   time.Time               `json:"created_at"`
	TimeAgo     string                  `json:"time_ago"`
}

func newNotificationResponse(n models.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Type:        n.Type,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
		TimeAgo:     services.TimeAgo(n.CreatedAt, time.Now()),
	}
}

func newNotificationResponses(notifications []models.Notification) []notificationResponse {
	responses := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, newNotificationResponse(n))
	}
	return responses
}

// activityResponse adds the elapsed-time string to the entity
type activityResponse struct {
	ID        uint                `json:"id"`
	Type      models.ActivityType `json:"type"`
	Icon      models.ActivityIcon `json:"icon"`
	Title     string              `json:"title"`
	CreatedAt time.Time           `json:"created_at"`
	TimeAgo   string              `json:"time_ago"`
}

func newActivityResponse(a models.Activity) activityResponse {
	return activityResponse{
		ID:        a.ID,
		Type:      a.Type,
		Icon:      a.Icon,
		Title:     a.Title,
		CreatedAt: a.CreatedAt,
		TimeAgo:   services.TimeAgo(a.CreatedAt, time.Now()),
	}
}

func newActivityResponses(activities []models.Activity) []activityResponse {
	responses := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, newActivityResponse(a))
	}
	return responses
}
