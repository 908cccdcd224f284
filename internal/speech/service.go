package speech

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/vgen-labs/vgen-backend/internal/shared"
)

const (
	FormatMP3 = "mp3"
	FormatAAC = "aac"
)

// Request is one synthesis request; it lives for the duration of a single
// HTTP request.
type Request struct {
	Text   string
	Voice  string
	Format string
}

// Service validates synthesis requests and delegates to the configured
// provider. Every provider call runs under an explicit timeout; failed calls
// are retried a bounded number of times with constant backoff.
type Service struct {
	synth   Synthesizer
	timeout time.Duration
	retries uint64
}

func NewService(synth Synthesizer, timeout time.Duration, retries uint64) *Service {
	return &Service{
		synth:   synth,
		timeout: timeout,
		retries: retries,
	}
}

// Generate returns the audio bytes and their content type. Validation
// failures come back as shared.ErrValidation, provider failures as
// shared.ErrUpstream.
func (s *Service) Generate(ctx context.Context, req Request) ([]byte, string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, "", fmt.Errorf("%w: text must not be empty", shared.ErrValidation)
	}
	if req.Format != FormatMP3 && req.Format != FormatAAC {
		return nil, "", fmt.Errorf("%w: unsupported audio_format %q", shared.ErrValidation, req.Format)
	}

	var audio []byte
	backoff := retry.WithMaxRetries(s.retries, retry.NewConstant(time.Second))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		b, err := s.synth.Synthesize(callCtx, req.Text, req.Voice, req.Format)
		if err != nil {
			return retry.RetryableError(err)
		}
		audio = b
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}

	return audio, ContentTypeFor(req.Format), nil
}

// ContentTypeFor maps an output format to the response content type.
func ContentTypeFor(format string) string {
	if format == FormatMP3 {
		return "audio/mpeg"
	}
	return "audio/aac"
}
