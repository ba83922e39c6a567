package repository

import (
	"context"
	"errors"
	"fmt"

	"tarefas_api/internal/common"
	"tarefas_api/internal/domain/model"

	"gorm.io/gorm"
)

type sqliteTaskRepository struct {
	db *gorm.DB
}

func NewSQLiteTaskRepository(db *gorm.DB) TaskRepository {
	return &sqliteTaskRepository{db: db}
}

func (r *sqliteTaskRepository) Create(ctx context.Context, task *model.Task) error {
	if result := r.db.WithContext(ctx).Create(task); result.Error != nil {
		return fmt.Errorf("sqliteTaskRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *sqliteTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	if result := r.db.WithContext(ctx).Order("id").Find(&tasks); result.Error != nil {
		return nil, fmt.Errorf("sqliteTaskRepository.List: %w", result.Error)
	}
	return tasks, nil
}

func (r *sqliteTaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, common.ErrTaskNotFound
		}
		return nil, fmt.Errorf("sqliteTaskRepository.FindByID: %w", result.Error)
	}
	return &task, nil
}

func (r *sqliteTaskRepository) Update(ctx context.Context, id int, text string) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Update("tarefa", text)
	if result.Error != nil {
		return fmt.Errorf("sqliteTaskRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrTaskNotFound
	}
	return nil
}

func (r *sqliteTaskRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if result.Error != nil {
		return fmt.Errorf("sqliteTaskRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrTaskNotFound
	}
	return nil
}
