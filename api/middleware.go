package api

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
)

// WithMiddleware wraps the router with CORS for the browser form, an access
// log written to out and panic recovery.
func WithMiddleware(h http.Handler, out io.Writer, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		handlers.ExposedHeaders([]string{"X-Request-ID"}),
	)

	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
		handlers.CombinedLoggingHandler(out, cors(h)),
	)
}
