package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitiesCappedAtTenNewestFirst(t *testing.T) {
	r := setupTest(t)
	tokens := registerUser(t, r, "alice", "alice@example.com")

	db := database.GetDB()
	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)

	// Backdated entries so ordering is unambiguous
	base := time.Now().Add(-48 * time.Hour)
	for i := 0; i < 12; i++ {
		entry := models.Activity{
			UserID:    user.ID,
			Type:      models.ActivityInfo,
			Icon:      models.IconMessage,
			Title:     "old entry",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&entry).Error)
	}

	w := doRequest(r, http.MethodGet, "/api/activities", tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var activities []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.Len(t, activities, 10)

	// The registration entry is the newest
	assert.Equal(t, "New account created", activities[0]["title"])
	assert.Equal(t, "moments ago", activities[0]["time_ago"])
	assert.Equal(t, "1 days ago", activities[1]["time_ago"])
}

func TestActivitiesAreScopedToCaller(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "alice", "alice@example.com")
	mallory := registerUser(t, r, "mallory", "mallory@example.com")

	w := doRequest(r, http.MethodGet, "/api/activities", mallory.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var activities []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.Len(t, activities, 1)
	assert.Equal(t, "New account created", activities[0]["title"])
}
