package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartdash/dashboard-api/internal/config"
	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Unique shared-cache in-memory database per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbCfg := config.DatabaseConfig{Type: "sqlite", Path: dsn}
	require.NoError(t, database.InitDB(&dbCfg))

	authCfg := config.AuthConfig{
		Secret:          "test-secret",
		Issuer:          "dashboard-api-test",
		AccessTokenTTL:  "5m",
		RefreshTokenTTL: "1h",
	}

	authService := services.NewAuthService(&authCfg)
	activityService := services.NewActivityService()
	statsService := services.NewStatsService()
	seedService := services.NewSeedService(authService)

	r := gin.New()
	handler := NewHandler(authService, activityService, statsService, seedService)
	SetupRoutes(r, handler)

	return r
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, r *gin.Engine, username, email string) services.TokenPair {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username":         username,
		"email":            email,
		"password":         "secret123",
		"password_confirm": "secret123",
		"first_name":       "Test",
		"last_name":        "User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Tokens services.TokenPair `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Tokens.Access)
	require.NotEmpty(t, resp.Tokens.Refresh)
	return resp.Tokens
}

func createTask(t *testing.T, r *gin.Engine, token string, body map[string]any) uint {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/tasks", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody(t, w)
	return uint(resp["id"].(float64))
}
