package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Register handles account creation
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	fieldErrors := gin.H{}
	if strings.TrimSpace(req.Username) == "" {
		fieldErrors["username"] = "this field is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fieldErrors["email"] = "this field is required"
	}
	if req.Password == "" {
		fieldErrors["password"] = "this field is required"
	} else if len(req.Password) < 6 {
		fieldErrors["password"] = "password must be at least 6 characters"
	}
	if req.Password != req.PasswordConfirm {
		fieldErrors["password_confirm"] = "passwords do not match"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	db := database.GetDB()

	var count int64
	db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"username": "a user with this username already exists"})
		return
	}

	db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"email": "a user with this email already exists"})
		return
	}

	hashedPassword, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      "user",
		IsActive:  true,
	}

	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authService.GenerateTokenPair(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
		return
	}

	// Welcome notification
	welcome := models.Notification{
		UserID:      user.ID,
		Title:       "Welcome!",
		Description: "Your account has been created successfully. Enjoy the dashboard.",
		Type:        models.NotificationSuccess,
	}
	if err := db.Create(&welcome).Error; err != nil {
		log.Printf("Warning: failed to create welcome notification: %v", err)
	}

	if err := h.activityService.Record(user.ID, models.ActivitySuccess, models.IconUser, "New account created"); err != nil {
		log.Printf("Warning: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    newUserResponse(user),
		"tokens":  tokens,
	})
}

// Login authenticates by email and password
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"email": "no account found with this email"})
		return
	}

	if !h.authService.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"password": "incorrect password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"email": "this account is inactive"})
		return
	}

	tokens, err := h.authService.GenerateTokenPair(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
		return
	}

	if err := h.activityService.Record(user.ID, models.ActivityInfo, models.IconUser, "Successful sign in"); err != nil {
		log.Printf("Warning: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    newUserResponse(user),
		"tokens":  tokens,
	})
}

// Logout revokes the caller's refresh token. Revocation failures are
// deliberately swallowed; logout never visibly fails.
func (h *Handler) Logout(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh"`
	}

	if err := c.ShouldBindJSON(&req); err == nil && req.Refresh != "" {
		if err := h.authService.RevokeRefreshToken(req.Refresh); err != nil {
			log.Printf("Warning: failed to revoke refresh token: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// RefreshToken exchanges a valid refresh token for a new access token
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"refresh": "this field is required"})
		return
	}

	access, err := h.authService.RefreshAccessToken(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// CurrentAccount returns the authenticated caller's representation
func (h *Handler) CurrentAccount(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, newUserResponse(user))
}
