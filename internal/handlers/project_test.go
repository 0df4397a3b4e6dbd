package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freelanceflow/freelance-flow-api/internal/dto"
	"github.com/freelanceflow/freelance-flow-api/internal/models"
)

func listProjects(t *testing.T, env testEnv, token, query string) []dto.ProjectDTO {
	t.Helper()

	w := env.do(t, http.MethodGet, "/api/projects"+query, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	return projects
}

func TestProjectCRUD(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "freelancer@example.com").AccessToken
	clientID := env.createClient(t, token, map[string]any{"name": "Acme"})

	id := env.createProject(t, token, map[string]any{
		"name":      "Website Relaunch",
		"client_id": clientID,
		"due_date":  "2024-07-01",
	})

	w := env.do(t, http.MethodGet, entityPath("projects", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var project dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, clientID, project.ClientID)
	require.Equal(t, "Website Relaunch", *project.Name)
	require.Equal(t, "active", *project.Status, "status defaults to active")
	require.Equal(t, "2024-07-01", *project.DueDate)

	w = env.do(t, http.MethodPatch, entityPath("projects", id), token, map[string]any{
		"status":   "completed",
		"due_date": nil,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, entityPath("projects", id), token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, "completed", *project.Status)
	require.Nil(t, project.DueDate)

	w = env.do(t, http.MethodDelete, entityPath("projects", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())

	require.Empty(t, listProjects(t, env, token, ""))
}

func TestCreateProjectValidation(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "freelancer@example.com").AccessToken
	clientID := env.createClient(t, token, map[string]any{"name": "Acme"})

	w := env.do(t, http.MethodPost, "/api/projects", token, map[string]any{
		"client_id": clientID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "name and client_id are required", errorMessage(t, w))

	w = env.do(t, http.MethodPost, "/api/projects", token, map[string]any{
		"name": "No parent",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/projects", token, map[string]any{
		"name":      "Bad date",
		"client_id": clientID,
		"due_date":  "soon",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "due_date must be ISO date", errorMessage(t, w))
}

func TestCreateProjectForeignClient(t *testing.T) {
	env := setupTestEnv(t)
	tokenA := env.register(t, "a@example.com").AccessToken
	tokenB := env.register(t, "b@example.com").AccessToken

	foreignClient := env.createClient(t, tokenA, map[string]any{"name": "Owned by A"})

	// The client exists, but not for B: not found, never forbidden.
	w := env.do(t, http.MethodPost, "/api/projects", tokenB, map[string]any{
		"name":      "Poaching",
		"client_id": foreignClient,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "client not found", errorMessage(t, w))

	missing := env.do(t, http.MethodPost, "/api/projects", tokenB, map[string]any{
		"name":      "Poaching",
		"client_id": foreignClient + 100,
	})
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, errorMessage(t, w), errorMessage(t, missing))
}

func TestListProjectsFilterAndOrdering(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "freelancer@example.com").AccessToken
	acme := env.createClient(t, token, map[string]any{"name": "Acme"})
	globex := env.createClient(t, token, map[string]any{"name": "Globex"})

	env.createProject(t, token, map[string]any{"name": "No due date", "client_id": acme})
	env.createProject(t, token, map[string]any{"name": "Due later", "client_id": acme, "due_date": "2024-09-01"})
	env.createProject(t, token, map[string]any{"name": "Due soon", "client_id": globex, "due_date": "2024-05-01"})

	all := listProjects(t, env, token, "")
	require.Len(t, all, 3)
	require.Equal(t, "Due soon", *all[0].Name)
	require.Equal(t, "Due later", *all[1].Name)
	require.Equal(t, "No due date", *all[2].Name)

	onlyAcme := listProjects(t, env, token, "?client_id="+itoa(acme))
	require.Len(t, onlyAcme, 2)
	for _, p := range onlyAcme {
		require.Equal(t, acme, p.ClientID)
	}

	w := env.do(t, http.MethodGet, "/api/projects?client_id=abc", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteClientCascades(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "freelancer@example.com").AccessToken
	clientID := env.createClient(t, token, map[string]any{"name": "Acme"})
	projectID := env.createProject(t, token, map[string]any{"name": "Relaunch", "client_id": clientID})
	env.createTask(t, token, map[string]any{"title": "Kickoff", "project_id": projectID})

	w := env.do(t, http.MethodDelete, entityPath("clients", clientID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects, tasks int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&projects).Error)
	require.NoError(t, env.db.Model(&models.Task{}).Count(&tasks).Error)
	require.Zero(t, projects)
	require.Zero(t, tasks)
}
