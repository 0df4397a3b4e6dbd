package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelanceflow/freelance-flow-api/internal/dto"
	apierrors "github.com/freelanceflow/freelance-flow-api/internal/errors"
	"github.com/freelanceflow/freelance-flow-api/internal/middleware"
	"github.com/freelanceflow/freelance-flow-api/internal/services"
)

// ClientHandler coordinates client CRUD handlers.
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// ListClients returns the caller's clients, optionally narrowed by a
// substring search (q) and an exact stage match.
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	clients, err := h.clientService.ListClients(userID, services.ListClientsInput{
		Query: c.Query("q"),
		Stage: c.Query("stage"),
	})
	if err != nil {
		apierrors.InternalError(c, "failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTOs(clients))
}

// GetClient returns a single client.
func (h *ClientHandler) GetClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrClientNotFound.Error())
		return
	}

	client, err := h.clientService.GetClient(id, userID)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// CreateClient persists a new client owned by the caller.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateClientRequest struct {
		Name           string  `json:"name"`
		Email          string  `json:"email"`
		Company        string  `json:"company"`
		Stage          string  `json:"stage"`
		NextActionDate *string `json:"next_action_date"`
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	input := services.CreateClientInput{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Stage:   req.Stage,
	}

	if req.NextActionDate != nil && *req.NextActionDate != "" {
		date, err := parseDate(*req.NextActionDate)
		if err != nil {
			apierrors.BadRequest(c, "next_action_date must be ISO date")
			return
		}
		input.NextActionDate = date
	}

	client, err := h.clientService.CreateClient(input)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": client.ID})
}

// UpdateClient applies a partial update. Only fields present in the body are
// touched; null or blank text clears a field, null clears the date.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrClientNotFound.Error())
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	input := services.UpdateClientInput{
		Name:    textPatch(body, "name"),
		Email:   textPatch(body, "email"),
		Company: textPatch(body, "company"),
		Stage:   textPatch(body, "stage"),
	}

	date, clear, err := datePatch(body, "next_action_date")
	if err != nil {
		apierrors.BadRequest(c, "next_action_date must be ISO date")
		return
	}
	input.NextActionDate = date
	input.ClearNextActionDate = clear

	if err := h.clientService.UpdateClient(id, userID, input); err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteClient removes a client and everything under it.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, services.ErrClientNotFound.Error())
		return
	}

	if err := h.clientService.DeleteClient(id, userID); err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClientNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrClientNameRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
