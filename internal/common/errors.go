package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict")
	ErrInternalServer = errors.New("internal server error")

	// User-visible messages, preserved verbatim from the original service.
	ErrTaskNotFound  = errors.New("Tarefa não encontrada")
	ErrUserExists    = errors.New("Usuário já registrado")
	ErrUserNotFound  = errors.New("Usuário não encontrado")
	ErrWrongPassword = errors.New("Senha incorreta")
	ErrNoToken       = errors.New("Nenhum token fornecido.")
	ErrTokenAuth     = errors.New("Falha ao autenticar o token.")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrTaskNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrWrongPassword) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrTokenAuth) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) || errors.Is(err, ErrNoToken) {
		return http.StatusForbidden
	}
	// The original surface answers 400, not 409, to a duplicate username.
	if errors.Is(err, ErrUserExists) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // Unique violation
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
