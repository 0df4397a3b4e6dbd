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

// ProjectHandler coordinates project CRUD handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns the caller's projects, optionally filtered by client.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	input := services.ListProjectsInput{}
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "invalid client_id")
			return
		}
		input.ClientID = &clientID
	}

	projects, err := h.projectService.ListProjects(userID, input)
	if err != nil {
		apierrors.InternalError(c, "failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// GetProject returns a single project.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrProjectNotFound.Error())
		return
	}

	project, err := h.projectService.GetProject(id, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// CreateProject persists a new project under one of the caller's clients.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name     string  `json:"name"`
		ClientID uint64  `json:"client_id"`
		Status   string  `json:"status"`
		DueDate  *string `json:"due_date"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	input := services.CreateProjectInput{
		UserID:   userID,
		ClientID: req.ClientID,
		Name:     req.Name,
		Status:   req.Status,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		date, err := parseDate(*req.DueDate)
		if err != nil {
			apierrors.BadRequest(c, "due_date must be ISO date")
			return
		}
		input.DueDate = date
	}

	project, err := h.projectService.CreateProject(input)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": project.ID})
}

// UpdateProject applies a partial update; client_id is never reparented.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrProjectNotFound.Error())
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	input := services.UpdateProjectInput{
		Name:   textPatch(body, "name"),
		Status: textPatch(body, "status"),
	}

	date, clear, err := datePatch(body, "due_date")
	if err != nil {
		apierrors.BadRequest(c, "due_date must be ISO date")
		return
	}
	input.DueDate = date
	input.ClearDueDate = clear

	if err := h.projectService.UpdateProject(id, userID, input); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteProject removes a project and its tasks.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrProjectNotFound.Error())
		return
	}

	if err := h.projectService.DeleteProject(id, userID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound), errors.Is(err, services.ErrClientNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProjectFieldsRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
