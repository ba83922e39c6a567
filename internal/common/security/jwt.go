package security

import (
	"context"
	"errors"
	"time"

	"tarefas_api/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed and tampered tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token signature is fine but the token is past its expiry.
	ErrExpiredToken = errors.New("token has expired")
)

// TokenService issues and verifies the HS256 bearer tokens used by the API.
// The jwtauth instance it wraps is also installed on the router so that
// jwtauth.Verifier can populate the request context.
type TokenService struct {
	auth     *jwtauth.JWTAuth
	lifetime time.Duration
}

func NewTokenService(secret []byte, lifetime time.Duration) *TokenService {
	return &TokenService{
		auth:     jwtauth.New("HS256", secret, nil),
		lifetime: lifetime,
	}
}

func (s *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

// GenerateToken signs a token carrying the user's identity claims.
func (s *TokenService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.lifetime).Unix(),
	}
	_, tokenString, err := s.auth.Encode(claims)
	return tokenString, err
}

// Verify checks signature and expiry and returns the token's claims.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (map[string]interface{}, error) {
	token, err := jwtauth.VerifyToken(s.auth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Helper functions to extract claims, used by the auth middleware.

func GetUserIDFromClaims(claims map[string]interface{}) (int, error) {
	switch id := claims["id"].(type) {
	case float64:
		return int(id), nil
	case int64:
		return int(id), nil
	case int:
		return id, nil
	default:
		return 0, errors.New("id claim is missing or not a number")
	}
}

func GetUsernameFromClaims(claims map[string]interface{}) (string, error) {
	username, ok := claims["username"].(string)
	if !ok {
		return "", errors.New("username claim is missing or not a string")
	}
	return username, nil
}

func GetUserRoleFromClaims(claims map[string]interface{}) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
