package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "typ" claim. Access tokens authorize API
// requests; refresh tokens are only accepted by the refresh endpoint.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer mints and verifies HS256 JWTs. The only identity carried is
// the user id, encoded as the decimal string subject.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (i *TokenIssuer) IssueAccessToken(userID uint64) (string, error) {
	return i.issue(userID, TokenTypeAccess, i.accessTTL)
}

func (i *TokenIssuer) IssueRefreshToken(userID uint64) (string, error) {
	return i.issue(userID, TokenTypeRefresh, i.refreshTTL)
}

// IssuePair issues a fresh access and refresh token for the same user.
func (i *TokenIssuer) IssuePair(userID uint64) (access string, refresh string, err error) {
	access, err = i.IssueAccessToken(userID)
	if err != nil {
		return "", "", err
	}
	refresh, err = i.IssueRefreshToken(userID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (i *TokenIssuer) issue(userID uint64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(userID, 10),
		"typ": tokenType,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse verifies signature, expiry and token type, and returns the user id.
func (i *TokenIssuer) Parse(tokenString, wantType string) (uint64, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	if tokenType, _ := claims["typ"].(string); tokenType != wantType {
		return 0, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
