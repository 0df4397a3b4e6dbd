package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/freelanceflow/freelance-flow-api/internal/auth"
	"github.com/freelanceflow/freelance-flow-api/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.register(t, "freelancer@example.com")
	require.Equal(t, "freelancer@example.com", registered.User.Email)
	require.NotEmpty(t, registered.AccessToken)
	require.NotEmpty(t, registered.RefreshToken)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "freelancer@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, registered.User.ID, response.User.ID)

	// The freshly issued access token must be usable.
	list := env.do(t, http.MethodGet, "/api/clients", response.AccessToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "   ",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "email and password required", errorMessage(t, w))
}

func TestRegisterDuplicateEmailNormalized(t *testing.T) {
	env := setupTestEnv(t)

	env.register(t, "freelancer@example.com")

	// Differs only by case and surrounding whitespace: same identity.
	w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "  Freelancer@Example.COM ",
		"password": "another",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "email already registered", errorMessage(t, w))
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)

	env.register(t, "freelancer@example.com")

	wrongPassword := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "freelancer@example.com",
		"password": "wrong",
	})
	unknownEmail := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})

	// Wrong password and unknown email must be indistinguishable.
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, errorMessage(t, unknownEmail), errorMessage(t, wrongPassword))
}

func TestRefresh(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.register(t, "freelancer@example.com")

	w := env.do(t, http.MethodPost, "/api/auth/refresh", registered.RefreshToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.RefreshResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)

	me := env.do(t, http.MethodGet, "/api/auth/me", response.AccessToken, nil)
	require.Equal(t, http.StatusOK, me.Code)
}

func TestMe(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.register(t, "freelancer@example.com")

	w := env.do(t, http.MethodGet, "/api/auth/me", registered.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, registered.User.ID, response.User.ID)
	require.Equal(t, "freelancer@example.com", response.User.Email)
}

func TestTokenTypeConfusionRejected(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.register(t, "freelancer@example.com")

	// A refresh token is never accepted where an access token is expected.
	w := env.do(t, http.MethodGet, "/api/clients", registered.RefreshToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// And an access token is never accepted by the refresh endpoint.
	w = env.do(t, http.MethodPost, "/api/auth/refresh", registered.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	env := setupTestEnv(t)

	registered := env.register(t, "freelancer@example.com")

	expiredIssuer := auth.NewTokenIssuer(testSecret, -time.Minute, -time.Minute)
	expired, err := expiredIssuer.IssueAccessToken(registered.User.ID)
	require.NoError(t, err)

	for _, path := range []string{"/api/clients", "/api/projects", "/api/tasks", "/api/auth/me"} {
		w := env.do(t, http.MethodGet, path, expired, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/clients", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Freelance Flow API running")
}
