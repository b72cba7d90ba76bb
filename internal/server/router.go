package server

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/octalbyte/ssokeeper/internal/sso"
)

// NewRouter builds the HTTP surface. All /api routes are guarded by basic
// auth when adminPassword is non-empty.
func NewRouter(mgr *sso.Manager, adminPassword string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestID)

	r.Get("/healthz", HealthzHandler())

	r.Route("/api", func(r chi.Router) {
		r.Use(AdminAuth(adminPassword))

		r.Get("/token", TokenHandler(mgr))
		r.Get("/status", StatusHandler(mgr))
		r.Post("/logout", LogoutHandler(mgr))

		r.Put("/config/credentials", PutCredentialsHandler(mgr))
		r.Put("/config/endpoint", PutEndpointHandler(mgr))
		r.Get("/config/endpoint", GetEndpointHandler(mgr))
	})

	return r
}
