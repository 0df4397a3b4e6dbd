package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freelanceflow/freelance-flow-api/internal/auth"
	apierrors "github.com/freelanceflow/freelance-flow-api/internal/errors"
)

const contextKeyUserID = "userID"

// RequireAuth validates the Bearer access token and stores the user id in
// the request context.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return requireToken(issuer, auth.TokenTypeAccess)
}

// RequireRefreshToken validates a Bearer refresh token. Only the refresh
// endpoint uses it; access tokens are rejected here and vice versa.
func RequireRefreshToken(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return requireToken(issuer, auth.TokenTypeRefresh)
}

func requireToken(issuer *auth.TokenIssuer, tokenType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "authorization token is required")
			c.Abort()
			return
		}

		userID, err := issuer.Parse(tokenString, tokenType)
		if err != nil {
			apierrors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetUserID retrieves the authenticated user id from context
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(contextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	return userID, ok
}
