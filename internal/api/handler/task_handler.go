package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tarefas_api/internal/app/service"
	"tarefas_api/internal/common"

	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest is the body of task create and update calls.
type TaskRequest struct {
	Text string `json:"tarefa"`
}

type taskCreatedResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createTask)
	r.Get("/", h.listTasks)
	r.Get("/{id}", h.getTask)
	r.Put("/{id}", h.updateTask)
	r.Delete("/{id}", h.deleteTask)
}

func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Text)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, taskCreatedResponse{
		Message: "Tarefa adicionada com sucesso!",
		ID:      task.ID,
	})
}

func (h *TaskHandler) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.taskService.UpdateTask(r.Context(), id, req.Text); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Tarefa atualizada com sucesso!"})
}

func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Tarefa removida com sucesso!"})
}

func taskID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
