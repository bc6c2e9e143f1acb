package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// routePattern returns the matched chi pattern, e.g. /api/teams/{id}, or
// "unmatched" when no route was found. A subrouter index such as
// /api/teams/ is reported without the trailing slash.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			if len(pattern) > 1 {
				pattern = strings.TrimSuffix(pattern, "/")
			}
			return pattern
		}
	}
	return "unmatched"
}
