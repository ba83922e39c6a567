package api

import (
	"net/http"
	"time"

	"tarefas_api/internal/api/handler"
	"tarefas_api/internal/api/middleware"
	"tarefas_api/internal/app/service"
	"tarefas_api/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/zerolog"
)

func NewRouter(
	authService *service.AuthService,
	taskService *service.TaskService,
	tokens *security.TokenService,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORS)

	// Verifies the bearer token when present, leaving the result in the
	// request context. Rejection happens later in middleware.Authenticator
	// so the public routes stay reachable without a token.
	r.Use(jwtauth.Verifier(tokens.JWTAuth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterRoutes(r)

	// Task routes (authenticated)
	taskHandler := handler.NewTaskHandler(taskService)
	r.Route("/tarefas", func(tr chi.Router) {
		tr.Use(middleware.Authenticator)
		taskHandler.RegisterRoutes(tr)
	})

	return r
}
