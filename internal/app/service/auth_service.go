package service

import (
	"context"
	"errors"
	"fmt"

	"tarefas_api/internal/common"
	"tarefas_api/internal/common/security"
	"tarefas_api/internal/domain/model"
	"tarefas_api/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Register creates the account. There is no lookup before the insert; the
// store's unique constraint on username decides whether the name is taken.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if req.Username == "" || req.Password == "" {
		return common.ErrBadRequest
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Role:           role,
	}
	return s.userRepo.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrWrongPassword
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResponse{Token: token}, nil
}
