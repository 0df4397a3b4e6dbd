package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/freelanceflow/freelance-flow-api/internal/auth"
	"github.com/freelanceflow/freelance-flow-api/internal/database"
	"github.com/freelanceflow/freelance-flow-api/internal/dto"
	"github.com/freelanceflow/freelance-flow-api/internal/handlers"
	"github.com/freelanceflow/freelance-flow-api/internal/models"
	"github.com/freelanceflow/freelance-flow-api/internal/repository"
	"github.com/freelanceflow/freelance-flow-api/internal/router"
	"github.com/freelanceflow/freelance-flow-api/internal/services"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	issuer *auth.TokenIssuer
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	issuer := auth.NewTokenIssuer(testSecret, 25*time.Minute, 7*24*time.Hour)
	authService := services.NewAuthService(userRepo)
	clientService := services.NewClientService(clientRepo)
	projectService := services.NewProjectService(projectRepo, clientRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	r := router.New(router.Deps{
		Issuer:         issuer,
		AuthHandler:    handlers.NewAuthHandler(authService, issuer),
		ClientHandler:  handlers.NewClientHandler(clientService),
		ProjectHandler: handlers.NewProjectHandler(projectService),
		TaskHandler:    handlers.NewTaskHandler(taskService),
		CORSOrigins:    []string{"http://localhost:5173"},
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:     db,
		router: r,
		issuer: issuer,
	}
}

// do sends a JSON request through the full router, attaching a Bearer token
// when one is given.
func (env testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the API and returns the auth response.
func (env testEnv) register(t *testing.T, email string) dto.AuthResponse {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// createClient creates a client via the API and returns its id.
func (env testEnv) createClient(t *testing.T, token string, body map[string]any) uint64 {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/clients", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeID(t, w)
}

// createProject creates a project via the API and returns its id.
func (env testEnv) createProject(t *testing.T, token string, body map[string]any) uint64 {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/projects", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeID(t, w)
}

// createTask creates a task via the API and returns its id.
func (env testEnv) createTask(t *testing.T, token string, body map[string]any) uint64 {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/tasks", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeID(t, w)
}

func decodeID(t *testing.T, w *httptest.ResponseRecorder) uint64 {
	t.Helper()

	var response struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	return response.ID
}

// errorMessage extracts the message from the uniform error envelope.
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Error.Message
}

func entityPath(prefix string, id uint64) string {
	return fmt.Sprintf("/api/%s/%d", prefix, id)
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
