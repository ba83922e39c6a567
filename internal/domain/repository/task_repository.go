package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tarefas_api/internal/common"
	"tarefas_api/internal/domain/model"
)

type TaskRepository interface {
	// Create inserts the task and assigns its id.
	Create(ctx context.Context, task *model.Task) error
	// List returns every task in store order.
	List(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id int) (*model.Task, error)
	// Update replaces the task's text. common.ErrTaskNotFound when no row has the id.
	Update(ctx context.Context, id int, text string) error
	// Delete removes the task. common.ErrTaskNotFound when no row has the id.
	Delete(ctx context.Context, id int) error
}

type pgTaskRepository struct {
	db *sql.DB
}

func NewPgTaskRepository(db *sql.DB) TaskRepository {
	return &pgTaskRepository{db: db}
}

func (r *pgTaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tarefas (tarefa) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, task.Text).Scan(&task.ID); err != nil {
		return fmt.Errorf("pgTaskRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	query := `SELECT id, tarefa FROM tarefas ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgTaskRepository.List: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(&task.ID, &task.Text); err != nil {
			return nil, fmt.Errorf("pgTaskRepository.List: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTaskRepository.List: %w", err)
	}
	return tasks, nil
}

func (r *pgTaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	query := `SELECT id, tarefa FROM tarefas WHERE id = $1`
	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&task.ID, &task.Text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrTaskNotFound
		}
		return nil, fmt.Errorf("pgTaskRepository.FindByID: %w", err)
	}
	return task, nil
}

func (r *pgTaskRepository) Update(ctx context.Context, id int, text string) error {
	query := `UPDATE tarefas SET tarefa = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, text, id)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrTaskNotFound
	}
	return nil
}

func (r *pgTaskRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM tarefas WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrTaskNotFound
	}
	return nil
}
