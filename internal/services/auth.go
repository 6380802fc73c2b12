package services

import (
	"errors"
	"time"

	"github.com/smartdash/dashboard-api/internal/config"
	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Token type claim values
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Claims represents JWT claims
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair holds a freshly issued access/refresh pair
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService handles password hashing and token issuance
type AuthService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.AuthConfig) *AuthService {
	return &AuthService{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL(),
		refreshTTL: cfg.RefreshTTL(),
	}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares hashed password with plain password
func (s *AuthService) CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GenerateTokenPair issues a short-lived access token and a long-lived,
// revocable refresh token for a user
func (s *AuthService) GenerateTokenPair(user *models.User) (*TokenPair, error) {
	access, err := s.signToken(user.ID, TokenTypeAccess, s.accessTTL, "")
	if err != nil {
		return nil, err
	}

	refresh, err := s.signToken(user.ID, TokenTypeRefresh, s.refreshTTL, uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) signToken(userID uint, tokenType string, ttl time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateAccessToken validates an access token and returns its claims
func (s *AuthService) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateRefreshToken validates a refresh token and rejects revoked ones
func (s *AuthService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	var count int64
	db := database.GetDB()
	if err := db.Model(&models.RevokedToken{}).Where("jti = ?", claims.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// RefreshAccessToken issues a new access token for a valid, non-revoked
// refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	return s.signToken(claims.UserID, TokenTypeAccess, s.accessTTL, "")
}

// RevokeRefreshToken invalidates a refresh token by recording its JTI.
// Revoking an already revoked token is a no-op.
func (s *AuthService) RevokeRefreshToken(refreshToken string) error {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return err
	}
	if claims.TokenType != TokenTypeRefresh || claims.ID == "" {
		return ErrInvalidToken
	}

	revoked := models.RevokedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
		RevokedAt: time.Now(),
	}

	db := database.GetDB()
	return db.Where("jti = ?", claims.ID).FirstOrCreate(&revoked).Error
}

// PurgeExpiredTokens deletes revocation records whose tokens have
// expired anyway and returns how many rows were removed
func (s *AuthService) PurgeExpiredTokens() (int64, error) {
	db := database.GetDB()
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{})
	return result.RowsAffected, result.Error
}
