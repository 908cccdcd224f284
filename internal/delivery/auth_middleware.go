package delivery

import (
	"context"
	"net/http"
	"strings"

	"github.com/vgen-labs/vgen-backend/internal/auth"
)

type ctxKey int

const subjectKey ctxKey = 0

// SubjectFromContext returns the username resolved by AuthMiddleware.
func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

func AuthMiddleware(authSvc auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				respondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			subject, err := authSvc.Authorize(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				respondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
