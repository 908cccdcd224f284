package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/vgen-labs/vgen-backend/internal/auth"
	"github.com/vgen-labs/vgen-backend/internal/config"
	"github.com/vgen-labs/vgen-backend/internal/delivery"
	"github.com/vgen-labs/vgen-backend/internal/speech"
)

func main() {

	// =========================================================================
	// ENV / CONFIG / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := baseLogger.Sugar()

	// =========================================================================
	// REPOSITORIES / CLIENTS
	// =========================================================================

	credStore := auth.NewPostgresStore(db)

	var synth speech.Synthesizer
	switch cfg.TTSProvider {
	case "elevenlabs":
		synth = speech.NewElevenLabsClient(cfg.ElevenLabsAPIKey)
	default:
		synth = speech.NewOpenAIClient(cfg.OpenAIAPIKey)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	hasher := auth.NewHasher(cfg.SecretKey)
	tokens := auth.NewTokenService(cfg.SecretKey)
	authService := auth.NewService(credStore, hasher, tokens, cfg.TokenTTL)
	speechService := speech.NewService(synth, cfg.SynthTimeout, cfg.SynthRetries)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	authHandler := delivery.NewAuthHandler(authService, zl)
	speechHandler := delivery.NewSpeechHandler(speechService, zl)

	// ROUTES
	delivery.RegisterRoutes(r, authHandler, speechHandler, authService, zl)

	r.With(delivery.Recover(zl)).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Infow("listening", "addr", addr, "tts_provider", cfg.TTSProvider)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
