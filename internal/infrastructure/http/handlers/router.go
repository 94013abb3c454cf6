// Package handlers exposes the mutation services over HTTP.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/whiteelite/catalog/internal/application/appstate"
	"github.com/whiteelite/catalog/internal/logger"
)

// NewRouter mounts the user and product routes on a chi router.
func NewRouter(state *appstate.AppState, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/users", newResource(state.UserService, state.UserRepo, state.Broker).routes)
	r.Route("/products", newResource(state.ProductService, state.ProductRepo, state.Broker).routes)

	return r
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	base := log.Zerolog()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			base.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request handled")
		})
	}
}
