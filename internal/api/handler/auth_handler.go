package handler

import (
	"encoding/json"
	"net/http"

	"tarefas_api/internal/app/service"
	"tarefas_api/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/registro", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.Register(r.Context(), req); err != nil {
		status := common.HTTPStatusFromError(err)
		if status == http.StatusInternalServerError {
			common.RespondWithError(w, status, "Erro no registro de usuário")
			return
		}
		common.RespondWithError(w, status, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, common.MessageResponse{Message: "Usuário registrado com sucesso"})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		status := common.HTTPStatusFromError(err)
		if status == http.StatusInternalServerError {
			common.RespondWithError(w, status, "Erro no login de usuário")
			return
		}
		common.RespondWithError(w, status, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
