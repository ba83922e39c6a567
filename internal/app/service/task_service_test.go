package service

import (
	"context"
	"errors"
	"testing"

	"tarefas_api/internal/common"
	"tarefas_api/internal/domain/model"

	"github.com/rs/zerolog"
)

// memTaskRepository is an in-memory TaskRepository with auto-increment ids
// that are never reused after deletion.
type memTaskRepository struct {
	tasks  []model.Task
	nextID int
	err    error
}

func newMemTaskRepository() *memTaskRepository {
	return &memTaskRepository{nextID: 1}
}

func (m *memTaskRepository) Create(ctx context.Context, task *model.Task) error {
	if m.err != nil {
		return m.err
	}
	task.ID = m.nextID
	m.nextID++
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *memTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *memTaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, task := range m.tasks {
		if task.ID == id {
			found := task
			return &found, nil
		}
	}
	return nil, common.ErrTaskNotFound
}

func (m *memTaskRepository) Update(ctx context.Context, id int, text string) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Text = text
			return nil
		}
	}
	return common.ErrTaskNotFound
}

func (m *memTaskRepository) Delete(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrTaskNotFound
}

func newTestTaskService(repo *memTaskRepository) *TaskService {
	return NewTaskService(repo, nil, zerolog.Nop())
}

func TestTaskService_CreateAndList(t *testing.T) {
	taskService := newTestTaskService(newMemTaskRepository())
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "comprar leite")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.ID == 0 {
		t.Error("CreateTask() did not assign an id")
	}
	if task.Text != "comprar leite" {
		t.Errorf("task text = %q, want %q", task.Text, "comprar leite")
	}

	tasks, err := taskService.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ListTasks() returned %d tasks, want 1", len(tasks))
	}
	if tasks[0].ID != task.ID || tasks[0].Text != "comprar leite" {
		t.Errorf("listed task = %+v, want id %d text %q", tasks[0], task.ID, "comprar leite")
	}
}

func TestTaskService_CreateEmptyText(t *testing.T) {
	taskService := newTestTaskService(newMemTaskRepository())

	_, err := taskService.CreateTask(context.Background(), "")
	if !errors.Is(err, common.ErrBadRequest) {
		t.Errorf("CreateTask() error = %v, want ErrBadRequest", err)
	}
}

func TestTaskService_UpdateRoundTrip(t *testing.T) {
	taskService := newTestTaskService(newMemTaskRepository())
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "comprar leite")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if err := taskService.UpdateTask(ctx, task.ID, "comprar pão"); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	got, err := taskService.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if got.Text != "comprar pão" {
		t.Errorf("task text after update = %q, want %q", got.Text, "comprar pão")
	}
}

func TestTaskService_Delete(t *testing.T) {
	repo := newMemTaskRepository()
	taskService := newTestTaskService(repo)
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "comprar leite")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if err := taskService.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if _, err := taskService.GetTask(ctx, task.ID); !errors.Is(err, common.ErrTaskNotFound) {
		t.Errorf("GetTask() after delete error = %v, want ErrTaskNotFound", err)
	}

	// Ids are never reused after deletion.
	next, err := taskService.CreateTask(ctx, "outra tarefa")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if next.ID <= task.ID {
		t.Errorf("new task id = %d, want greater than %d", next.ID, task.ID)
	}
}

func TestTaskService_NotFound(t *testing.T) {
	taskService := newTestTaskService(newMemTaskRepository())
	ctx := context.Background()

	if _, err := taskService.GetTask(ctx, 42); !errors.Is(err, common.ErrTaskNotFound) {
		t.Errorf("GetTask() error = %v, want ErrTaskNotFound", err)
	}
	if err := taskService.UpdateTask(ctx, 42, "texto"); !errors.Is(err, common.ErrTaskNotFound) {
		t.Errorf("UpdateTask() error = %v, want ErrTaskNotFound", err)
	}
	if err := taskService.DeleteTask(ctx, 42); !errors.Is(err, common.ErrTaskNotFound) {
		t.Errorf("DeleteTask() error = %v, want ErrTaskNotFound", err)
	}
}
