package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", 25*time.Minute, 7*24*time.Hour)

	access, refresh, err := issuer.IssuePair(42)
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	userID, err := issuer.Parse(access, TokenTypeAccess)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)

	userID, err = issuer.Parse(refresh, TokenTypeRefresh)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestParseRejectsWrongType(t *testing.T) {
	issuer := NewTokenIssuer("secret", 25*time.Minute, 7*24*time.Hour)

	access, refresh, err := issuer.IssuePair(42)
	require.NoError(t, err)

	_, err = issuer.Parse(access, TokenTypeRefresh)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse(refresh, TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute, -time.Minute)

	access, err := issuer.IssueAccessToken(42)
	require.NoError(t, err)

	_, err = issuer.Parse(access, TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", 25*time.Minute, 7*24*time.Hour)
	other := NewTokenIssuer("other-secret", 25*time.Minute, 7*24*time.Hour)

	access, err := issuer.IssueAccessToken(42)
	require.NoError(t, err)

	_, err = other.Parse(access, TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", 25*time.Minute, 7*24*time.Hour)

	_, err := issuer.Parse("not-a-token", TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}
