package delivery

import (
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	msgUnauthorized = "Credenciales incorrectas"
	msgInternal     = "Exception occurred"
)

type errorEnvelope struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError writes the error envelope. 401 responses carry the Basic
// challenge and the fixed message existing clients expect, even though
// /login hands out bearer tokens.
func respondError(w http.ResponseWriter, status int, message string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Basic")
		message = msgUnauthorized
	}
	respondJSON(w, status, errorEnvelope{Message: message})
}

// Recover converts panics into a generic 500 so internals never reach the
// client.
func Recover(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorw("panic recovered", "path", r.URL.Path, "panic", rec)
					respondError(w, http.StatusInternalServerError, msgInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
