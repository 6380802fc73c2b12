package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	r := setupTest(t)
	tokens := registerUser(t, r, "alice", "alice@example.com")

	id := createTask(t, r, tokens.Access, map[string]any{
		"title":    "Prepare report",
		"priority": "high",
		"due_date": "2026-01-14",
	})

	// Read it back with the computed due-date label
	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Prepare report", body["title"])
	assert.Equal(t, "high", body["priority"])
	assert.Equal(t, "14 January", body["formatted_date"])
	assert.Equal(t, false, body["completed"])

	// Update the title
	w = doRequest(r, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), tokens.Access, map[string]any{
		"title": "Prepare quarterly report",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Prepare quarterly report", decodeBody(t, w)["title"])

	// Delete
	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), tokens.Access, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Each mutation logged one activity (plus registration)
	var titles []string
	database.GetDB().Model(&models.Activity{}).Order("id").Pluck("title", &titles)
	assert.Equal(t, []string{
		"New account created",
		"Created task: Prepare report",
		"Updated task: Prepare quarterly report",
		"Deleted task: Prepare quarterly report",
	}, titles)
}

func TestTaskValidation(t *testing.T) {
	r := setupTest(t)
	tokens := registerUser(t, r, "alice", "alice@example.com")

	w := doRequest(r, http.MethodPost, "/api/tasks", tokens.Access, map[string]any{
		"title": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "title")

	w = doRequest(r, http.MethodPost, "/api/tasks", tokens.Access, map[string]any{
		"title": "ok", "priority": "urgent",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "priority")

	w = doRequest(r, http.MethodPost, "/api/tasks", tokens.Access, map[string]any{
		"title": "ok", "due_date": "14/01/2026",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "due_date")

	// Priority defaults to medium
	id := createTask(t, r, tokens.Access, map[string]any{"title": "defaults"})
	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), tokens.Access, nil)
	assert.Equal(t, "medium", decodeBody(t, w)["priority"])
}

func TestTaskOwnershipScoping(t *testing.T) {
	r := setupTest(t)
	alice := registerUser(t, r, "alice", "alice@example.com")
	mallory := registerUser(t, r, "mallory", "mallory@example.com")

	id := createTask(t, r, alice.Access, map[string]any{"title": "private"})
	path := fmt.Sprintf("/api/tasks/%d", id)

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, path, mallory.Access, nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodPatch, path, mallory.Access, map[string]any{"title": "stolen"}).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodPatch, path+"/toggle", mallory.Access, nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodDelete, path, mallory.Access, nil).Code)

	// Foreign tasks are invisible in listings too
	w := doRequest(r, http.MethodGet, "/api/tasks", mallory.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestToggleTwiceRestoresState(t *testing.T) {
	r := setupTest(t)
	tokens := registerUser(t, r, "alice", "alice@example.com")

	id := createTask(t, r, tokens.Access, map[string]any{"title": "flip me"})
	path := fmt.Sprintf("/api/tasks/%d/toggle", id)

	w := doRequest(r, http.MethodPatch, path, tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["completed"])

	w = doRequest(r, http.MethodPatch, path, tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["completed"])

	// One activity per toggle, typed by the new state
	db := database.GetDB()

	var completedCount int64
	db.Model(&models.Activity{}).
		Where("title = ? AND type = ?", "Completed task: flip me", models.ActivitySuccess).
		Count(&completedCount)
	assert.Equal(t, int64(1), completedCount)

	var reopenedCount int64
	db.Model(&models.Activity{}).
		Where("title = ? AND type = ?", "Reopened task: flip me", models.ActivityInfo).
		Count(&reopenedCount)
	assert.Equal(t, int64(1), reopenedCount)
}

func TestTaskProgress(t *testing.T) {
	r := setupTest(t)
	tokens := registerUser(t, r, "alice", "alice@example.com")

	// No tasks: percentage defined as zero
	w := doRequest(r, http.MethodGet, "/api/tasks/progress", tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["total"])
	assert.Equal(t, float64(0), body["percentage"])

	createTask(t, r, tokens.Access, map[string]any{"title": "one", "completed": true})
	createTask(t, r, tokens.Access, map[string]any{"title": "two"})
	createTask(t, r, tokens.Access, map[string]any{"title": "three"})

	w = doRequest(r, http.MethodGet, "/api/tasks/progress", tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(1), body["completed"])
	assert.Equal(t, float64(33), body["percentage"])
}

func TestTaskListOrder(t *testing.T) {
	r := setupTest(t)
	tokens := registerUser(t, r, "alice", "alice@example.com")

	first := createTask(t, r, tokens.Access, map[string]any{"title": "first"})
	second := createTask(t, r, tokens.Access, map[string]any{"title": "second"})

	w := doRequest(r, http.MethodGet, "/api/tasks", tokens.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 2)

	// Most recently created first; identical timestamps fall back to id order
	ids := []uint{uint(tasks[0]["id"].(float64)), uint(tasks[1]["id"].(float64))}
	assert.ElementsMatch(t, []uint{first, second}, ids)
}
