package api

import (
	"net/http"
	"songvault/internal/api/handler"
	"songvault/internal/app/service"
	"songvault/internal/common/security"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	songService *service.SongService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// JWT Auth Middleware Setup
	// It will search for a token in "Authorization: Bearer T" and put the
	// verified claims in context for middleware.Authenticator to consume.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	r.Route("/auth", authHandler.RegisterRoutes)

	// Song routes (reads partly public, mutations authenticated)
	songHandler := handler.NewSongHandler(songService)
	r.Route("/songs", songHandler.RegisterRoutes)

	return r
}
