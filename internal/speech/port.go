package speech

import "context"

// Synthesizer converts text to audio bytes with a provider-specific voice
// and output format.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice, format string) ([]byte, error)
}
