package delivery

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vgen-labs/vgen-backend/internal/auth"
)

func RegisterRoutes(
	r chi.Router,
	hAuth *AuthHandler,
	hSpeech *SpeechHandler,
	authSvc auth.Service,
	log *zap.SugaredLogger,
) {
	// --- auth ---
	r.With(Recover(log)).
		Post("/login", hAuth.Login)

	// --- protected ---
	r.Route("/", func(pr chi.Router) {
		pr.Use(
			Recover(log),
			AuthMiddleware(authSvc),
		)

		pr.Post("/generate", hSpeech.Generate)
	})
}
