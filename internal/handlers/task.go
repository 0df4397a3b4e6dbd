package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freelanceflow/freelance-flow-api/internal/dto"
	apierrors "github.com/freelanceflow/freelance-flow-api/internal/errors"
	"github.com/freelanceflow/freelance-flow-api/internal/middleware"
	"github.com/freelanceflow/freelance-flow-api/internal/services"
)

// TaskHandler coordinates task CRUD handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the caller's tasks, optionally filtered by project.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	input := services.ListTasksInput{}
	if raw := c.Query("project_id"); raw != "" {
		projectID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "invalid project_id")
			return
		}
		input.ProjectID = &projectID
	}

	tasks, err := h.taskService.ListTasks(userID, input)
	if err != nil {
		apierrors.InternalError(c, "failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrTaskNotFound.Error())
		return
	}

	task, err := h.taskService.GetTask(id, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask persists a new task under one of the caller's projects.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title     string  `json:"title"`
		ProjectID uint64  `json:"project_id"`
		Status    string  `json:"status"`
		DueDate   *string `json:"due_date"`
		Notes     string  `json:"notes"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	input := services.CreateTaskInput{
		UserID:    userID,
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Status:    req.Status,
		Notes:     req.Notes,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		date, err := parseDate(*req.DueDate)
		if err != nil {
			apierrors.BadRequest(c, "due_date must be ISO date")
			return
		}
		input.DueDate = date
	}

	task, err := h.taskService.CreateTask(input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": task.ID})
}

// UpdateTask applies a partial update; project_id is never reparented.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrTaskNotFound.Error())
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Title:  textPatch(body, "title"),
		Status: textPatch(body, "status"),
		Notes:  textPatch(body, "notes"),
	}

	date, clear, err := datePatch(body, "due_date")
	if err != nil {
		apierrors.BadRequest(c, "due_date must be ISO date")
		return
	}
	input.DueDate = date
	input.ClearDueDate = clear

	if err := h.taskService.UpdateTask(id, userID, input); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrTaskNotFound.Error())
		return
	}

	if err := h.taskService.DeleteTask(id, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskFieldsRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
