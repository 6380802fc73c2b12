package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	{
		// Authentication (no auth required)
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)
		api.POST("/auth/token/refresh", handler.RefreshToken)

		// Development fixtures
		api.POST("/seed", handler.SeedData)
	}

	authorized := api.Group("")
	authorized.Use(AuthRequired(handler.authService))
	{
		authorized.POST("/auth/logout", handler.Logout)
		authorized.GET("/auth/me", handler.CurrentAccount)

		// Tasks
		authorized.GET("/tasks", handler.ListTasks)
		authorized.POST("/tasks", handler.CreateTask)
		authorized.GET("/tasks/progress", handler.TaskProgress)
		authorized.GET("/tasks/:id", handler.GetTask)
		authorized.PUT("/tasks/:id", handler.UpdateTask)
		authorized.PATCH("/tasks/:id", handler.UpdateTask)
		authorized.DELETE("/tasks/:id", handler.DeleteTask)
		authorized.PATCH("/tasks/:id/toggle", handler.ToggleTask)

		// Notifications
		authorized.GET("/notifications", handler.ListNotifications)
		authorized.GET("/notifications/unread_count", handler.UnreadCount)
		authorized.PATCH("/notifications/mark_all_read", handler.MarkAllRead)
		authorized.GET("/notifications/:id", handler.GetNotification)
		authorized.PATCH("/notifications/:id", handler.UpdateNotification)
		authorized.PATCH("/notifications/:id/mark_read", handler.MarkRead)

		// Activity log
		authorized.GET("/activities", handler.ListActivities)

		// Statistics
		authorized.GET("/statistics", handler.ListStatistics)
		authorized.GET("/statistics/dashboard", handler.Dashboard)
		authorized.GET("/statistics/chart", handler.Chart)
		authorized.GET("/statistics/:id", handler.GetStatistics)
	}
}
