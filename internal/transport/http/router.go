// Package transporthttp wires the account endpoints into a router. The
// handlers mount under /api/v1 so the surrounding application (posts, chat,
// static assets) can sit beside them under the same prefix.
package transporthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/sociogram/backend/internal/service"
	"github.com/sociogram/backend/internal/token"
	"github.com/sociogram/backend/internal/transport/http/handlers"
	"github.com/sociogram/backend/internal/transport/http/middleware"
)

func NewRouter(accounts *service.AccountService, tokens *token.Maker, logger zerolog.Logger) http.Handler {
	authHandler := handlers.NewAuthHandler(accounts, logger)
	userHandler := handlers.NewUserHandler(accounts, logger)

	r := chi.NewRouter()
	r.Use(middleware.CORS)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))
			r.Get("/me", userHandler.Me)
			r.Put("/update/profile", userHandler.UpdateProfile)
		})
	})

	return r
}
