// Package config loads runtime settings from the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings for the VGen backend.
//
// Fields:
//   - Port: HTTP listen port.
//   - DatabaseURL: PostgreSQL DSN for the credential store.
//   - SecretKey: HMAC secret used both for password hashing and JWT signing (HS256).
//   - TokenTTL: access token lifetime.
//   - TTSProvider: which synthesis provider to use ("openai" or "elevenlabs").
//   - OpenAIAPIKey / ElevenLabsAPIKey: provider credentials.
//   - SynthTimeout: per-attempt deadline on the outbound synthesis call.
//   - SynthRetries: how many times a failed synthesis call is retried.
type Config struct {
	Port             string
	DatabaseURL      string
	SecretKey        string
	TokenTTL         time.Duration
	TTSProvider      string
	OpenAIAPIKey     string
	ElevenLabsAPIKey string
	SynthTimeout     time.Duration
	SynthRetries     uint64
}

// Load builds a Config from environment variables. SECRET_KEY, DATABASE_URL
// and the selected provider's API key are required; everything else has a
// default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             envOr("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SecretKey:        os.Getenv("SECRET_KEY"),
		TokenTTL:         48 * time.Hour,
		TTSProvider:      envOr("TTS_PROVIDER", "openai"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		ElevenLabsAPIKey: os.Getenv("ELEVENLABS_API_KEY"),
		SynthTimeout:     60 * time.Second,
		SynthRetries:     2,
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if v := os.Getenv("SYNTH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SYNTH_TIMEOUT: %w", err)
		}
		cfg.SynthTimeout = d
	}

	if v := os.Getenv("SYNTH_RETRIES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid SYNTH_RETRIES: %w", err)
		}
		cfg.SynthRetries = n
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY is not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	switch cfg.TTSProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is not set")
		}
	case "elevenlabs":
		if cfg.ElevenLabsAPIKey == "" {
			return nil, errors.New("ELEVENLABS_API_KEY is not set")
		}
	default:
		return nil, fmt.Errorf("unknown TTS_PROVIDER %q", cfg.TTSProvider)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
