package middleware

import (
	"net/http"
	"time"

	"eventsapi/internal/monitoring"
)

// unmatchedRoute labels requests no route pattern matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route pattern. It must wrap the
// ServeMux directly so the matched pattern is visible on the request once the mux returns.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)
		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		monitoring.TrackRequest(route, r.Method, wrapped.status, time.Since(start))
	})
}
