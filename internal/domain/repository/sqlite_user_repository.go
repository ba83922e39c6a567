package repository

import (
	"context"
	"errors"
	"fmt"

	"tarefas_api/internal/common"
	"tarefas_api/internal/domain/model"

	"gorm.io/gorm"
)

type sqliteUserRepository struct {
	db *gorm.DB
}

func NewSQLiteUserRepository(db *gorm.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

func (r *sqliteUserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return common.ErrUserExists
		}
		return fmt.Errorf("sqliteUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *sqliteUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("sqliteUserRepository.FindByUsername: %w", result.Error)
	}
	return &user, nil
}
