package models

import (
	"time"
)

// TaskPriority is the closed set of task priority levels
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is a known priority
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// NotificationType is the closed set of notification types
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Valid reports whether t is a known notification type
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	}
	return false
}

// ActivityType is the closed set of activity severities
type ActivityType string

const (
	ActivitySuccess ActivityType = "success"
	ActivityInfo    ActivityType = "info"
	ActivityWarning ActivityType = "warning"
	ActivityDanger  ActivityType = "danger"
)

// ActivityIcon is the closed set of activity icon tags
type ActivityIcon string

const (
	IconCheck   ActivityIcon = "check"
	IconUser    ActivityIcon = "user"
	IconAlert   ActivityIcon = "alert"
	IconX       ActivityIcon = "x"
	IconMessage ActivityIcon = "message"
)

// User represents a dashboard account
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"` // Username
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`    // Email
	Password  string    `gorm:"not null" json:"-"`                    // Hashed password (excluded from JSON)
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `gorm:"default:user" json:"role"`      // Role (user/admin)
	IsActive  bool      `gorm:"default:true" json:"is_active"` // Account status
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task represents a todo item owned by a user
type Task struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	UserID    uint         `gorm:"index;not null" json:"-"`
	User      User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title     string       `gorm:"not null" json:"title"`
	Priority  TaskPriority `gorm:"default:medium" json:"priority"`
	DueDate   *time.Time   `json:"due_date"`
	Completed bool         `gorm:"default:false" json:"completed"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Notification represents a message shown in the notification tray
type Notification struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	UserID      uint             `gorm:"index;not null" json:"-"`
	User        User             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string           `gorm:"not null" json:"title"`
	Description string           `json:"description"`
	Type        NotificationType `gorm:"default:info" json:"type"`
	IsRead      bool             `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Activity is an append-only audit record of a user-visible action
type Activity struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	UserID    uint         `gorm:"index;not null" json:"-"`
	User      User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Type      ActivityType `gorm:"default:info" json:"type"`
	Icon      ActivityIcon `gorm:"default:check" json:"icon"`
	Title     string       `gorm:"not null" json:"title"`
	CreatedAt time.Time    `json:"created_at"`
}

// Statistics holds the aggregate figures for one calendar day
type Statistics struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	RecordDate         time.Time `gorm:"uniqueIndex;not null" json:"record_date"`
	Revenue            float64   `json:"revenue"`
	ActiveUsers        int       `json:"active_users"`
	CompletedProjects  int       `json:"completed_projects"`
	ConversionRate     float64   `json:"conversion_rate"`
	ProductsSales      float64   `json:"products_sales"`
	ServicesSales      float64   `json:"services_sales"`
	SubscriptionsSales float64   `json:"subscriptions_sales"`
	ConsultingSales    float64   `json:"consulting_sales"`
}

// TotalSales is the sum of the four sales channels
func (s *Statistics) TotalSales() float64 {
	return s.ProductsSales + s.ServicesSales + s.SubscriptionsSales + s.ConsultingSales
}

// RevokedToken records a refresh token invalidated by logout.
// Rows are purged by the scheduler once ExpiresAt passes.
type RevokedToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	JTI       string    `gorm:"uniqueIndex;not null" json:"jti"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
}
