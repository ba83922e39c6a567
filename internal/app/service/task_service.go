package service

import (
	"context"

	"tarefas_api/internal/common"
	"tarefas_api/internal/domain/model"
	"tarefas_api/internal/domain/repository"
	"tarefas_api/internal/platform/cache"

	"github.com/rs/zerolog"
)

const taskListCacheKey = "all"

// TaskService implements the task CRUD use cases. The cache is optional;
// a nil cache means every list goes to the store.
type TaskService struct {
	taskRepo repository.TaskRepository
	cache    *cache.Cache
	logger   zerolog.Logger
}

func NewTaskService(taskRepo repository.TaskRepository, c *cache.Cache, logger zerolog.Logger) *TaskService {
	return &TaskService{taskRepo: taskRepo, cache: c, logger: logger}
}

func (s *TaskService) CreateTask(ctx context.Context, text string) (*model.Task, error) {
	if text == "" {
		return nil, common.ErrBadRequest
	}
	task := &model.Task{Text: text}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	if s.cache != nil {
		var tasks []model.Task
		hit, err := s.cache.Get(ctx, taskListCacheKey, &tasks)
		if err != nil {
			s.logger.Warn().Err(err).Msg("task list cache read failed")
		} else if hit {
			return tasks, nil
		}
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, taskListCacheKey, tasks); err != nil {
			s.logger.Warn().Err(err).Msg("task list cache write failed")
		}
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int, text string) error {
	if text == "" {
		return common.ErrBadRequest
	}
	if err := s.taskRepo.Update(ctx, id, text); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

// invalidateList drops the cached task list after a write. Failures are
// logged and swallowed; the store remains the source of truth.
func (s *TaskService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, taskListCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("task list cache invalidation failed")
	}
}
