package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/mediguide/backend/internal/infrastructure/observability"
)

// RecoveryMiddleware turns handler panics into JSON 500 responses. Panic
// detail is only echoed back in development.
func RecoveryMiddleware(env string) func(http.Handler) http.Handler {
	development := env == "development"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					observability.LoggerFromContext(r.Context()).Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					message := "Internal server error"
					if development {
						message = fmt.Sprintf("panic: %v", rec)
					}

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error":   http.StatusText(http.StatusInternalServerError),
						"message": message,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
