package common

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the data stored in a session token. The hosted
// backend issues these on login; this client only parses them.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func sessionSecret() []byte {
	return []byte(os.Getenv("SESSION_SECRET"))
}

// GenerateSessionToken signs a token for the given user. Used by tests
// and local tooling; production tokens come from the backend.
func GenerateSessionToken(userID, username string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "chatty",
			Subject:   "session",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(sessionSecret())
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// TokenIdentity answers "who is the current user" from a parsed session
// token. Satisfies the backend Identity contract.
type TokenIdentity struct {
	claims *Claims
}

// NewTokenIdentity parses the token once; an invalid token means there
// is no authenticated user.
func NewTokenIdentity(tokenString string) (*TokenIdentity, error) {
	claims, err := ParseSessionToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &TokenIdentity{claims: claims}, nil
}

func (ti *TokenIdentity) CurrentUserID() (string, error) {
	if ti == nil || ti.claims == nil || ti.claims.UserID == "" {
		return "", errors.New("no authenticated user")
	}
	return ti.claims.UserID, nil
}

// Username returns the authenticated user's handle for display.
func (ti *TokenIdentity) Username() string {
	if ti == nil || ti.claims == nil {
		return ""
	}
	return ti.claims.Username
}
