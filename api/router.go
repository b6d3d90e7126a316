package api

import (
	"net/http"
	"scanrelay/api/router/handlers"
	"scanrelay/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures the HTTP router for the service.
func NewRouter(receiver *handlers.ReceiverHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	handlers.RegisterHealthRoutes(r)
	handlers.RegisterVersionRoutes(r)
	handlers.RegisterReceiverRoutes(r, receiver)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logger.Error("ROUTER CATCH-ALL: Unhandled route: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return r
}
