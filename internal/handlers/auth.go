package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelanceflow/freelance-flow-api/internal/auth"
	"github.com/freelanceflow/freelance-flow-api/internal/dto"
	apierrors "github.com/freelanceflow/freelance-flow-api/internal/errors"
	"github.com/freelanceflow/freelance-flow-api/internal/middleware"
	"github.com/freelanceflow/freelance-flow-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	issuer      *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		issuer:      issuer,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and issues the initial token pair.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, services.ErrCredentialsRequired.Error())
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	h.respondWithTokens(c, http.StatusCreated, user.ID, dto.ToUserDTO(*user))
}

// Login verifies credentials and issues a fresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Unauthorized(c, services.ErrInvalidCredentials.Error())
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	h.respondWithTokens(c, http.StatusOK, user.ID, dto.ToUserDTO(*user))
}

// Refresh mints a new access token for the identity carried by the refresh
// token. The refresh token itself is not rotated.
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "invalid or expired token")
		return
	}

	access, err := h.issuer.IssueAccessToken(userID)
	if err != nil {
		apierrors.InternalError(c, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: access})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{User: dto.ToUserDTO(*user)})
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, status int, userID uint64, user dto.UserDTO) {
	access, refresh, err := h.issuer.IssuePair(userID)
	if err != nil {
		apierrors.InternalError(c, "failed to issue tokens")
		return
	}

	c.JSON(status, dto.AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCredentialsRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
