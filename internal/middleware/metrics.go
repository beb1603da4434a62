package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/travelflow/tripflow/internal/observability"
)

// NewMetricsHandler returns a middleware that records one prometheus
// observation per served request. The route label uses chi's route pattern
// (e.g. /api/trips/{id}) rather than the raw path, keeping label cardinality
// bounded.
func NewMetricsHandler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			observability.ObserveHTTP(route, r.Method, ww.Status(), time.Since(start))
		})
	}
}
