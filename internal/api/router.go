package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/isdelr/banco-api-be/internal/api/handlers"
	"github.com/isdelr/banco-api-be/internal/auth"
	"github.com/isdelr/banco-api-be/internal/config"
	"github.com/isdelr/banco-api-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	accountService services.AccountServiceProvider,
	transactionService services.TransactionServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	r.Get("/health", handlers.Health)

	// Public endpoints
	r.Post("/usuarios/", userHandler.Register)
	r.Post("/login", userHandler.Login)

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Route("/contas", func(r chi.Router) {
			r.Post("/", accountHandler.Create)
			r.Get("/", accountHandler.List)
			r.Get("/{userID}/extrato", accountHandler.Statement)
		})

		r.Post("/transacoes/", transactionHandler.Create)
	})

	return r
}
