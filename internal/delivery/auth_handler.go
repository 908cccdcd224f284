package delivery

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/vgen-labs/vgen-backend/internal/auth"
	"github.com/vgen-labs/vgen-backend/internal/shared"
)

type AuthHandler struct {
	auth auth.Service
	log  *zap.SugaredLogger
}

func NewAuthHandler(auth auth.Service, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Login accepts credentials either as HTTP Basic auth or as a JSON body and
// returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if user, pass, ok := r.BasicAuth(); ok {
		req.Username, req.Password = user, pass
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, shared.ErrUnauthorized) {
			h.log.Errorw("login failed", "error", err)
			respondError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		respondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
