package security

import (
	"context"
	"errors"
	"testing"
	"time"

	"tarefas_api/internal/domain/model"
)

func testUser() *model.User {
	return &model.User{
		ID:       7,
		Username: "maria",
		Role:     model.RoleUser,
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	user := testUser()

	tokenString, err := tokens.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if tokenString == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := tokens.Verify(context.Background(), tokenString)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	id, err := GetUserIDFromClaims(claims)
	if err != nil {
		t.Fatalf("GetUserIDFromClaims() error = %v", err)
	}
	if id != user.ID {
		t.Errorf("id claim = %d, want %d", id, user.ID)
	}

	username, err := GetUsernameFromClaims(claims)
	if err != nil {
		t.Fatalf("GetUsernameFromClaims() error = %v", err)
	}
	if username != user.Username {
		t.Errorf("username claim = %q, want %q", username, user.Username)
	}

	role, err := GetUserRoleFromClaims(claims)
	if err != nil {
		t.Fatalf("GetUserRoleFromClaims() error = %v", err)
	}
	if role != user.Role {
		t.Errorf("role claim = %q, want %q", role, user.Role)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-one"), time.Hour)
	verifier := NewTokenService([]byte("secret-two"), time.Hour)

	tokenString, err := issuer.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = verifier.Verify(context.Background(), tokenString)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), -time.Minute)

	tokenString, err := tokens.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = tokens.Verify(context.Background(), tokenString)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "random string", token: "not.a.valid.token"},
		{name: "truncated jwt", token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(context.Background(), tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	tokenString, err := tokens.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tampered := tokenString + "x"
	if _, err := tokens.Verify(context.Background(), tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}
