package speech

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vgen-labs/vgen-backend/internal/shared"
)

type fakeSynth struct {
	calls int
	fn    func(call int) ([]byte, error)
}

func (f *fakeSynth) Synthesize(_ context.Context, _, _, _ string) ([]byte, error) {
	f.calls++
	return f.fn(f.calls)
}

func fixedSynth(b []byte) *fakeSynth {
	return &fakeSynth{fn: func(int) ([]byte, error) { return b, nil }}
}

func TestGenerate_EmptyText(t *testing.T) {
	t.Parallel()

	synth := fixedSynth([]byte("mp3-bytes"))
	svc := NewService(synth, time.Second, 0)

	_, _, err := svc.Generate(context.Background(), Request{Text: "  ", Voice: "alloy", Format: FormatMP3})
	require.ErrorIs(t, err, shared.ErrValidation)
	require.Zero(t, synth.calls)
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	synth := fixedSynth([]byte("bytes"))
	svc := NewService(synth, time.Second, 0)

	_, _, err := svc.Generate(context.Background(), Request{Text: "Hello", Voice: "alloy", Format: "wav"})
	require.ErrorIs(t, err, shared.ErrValidation)
	require.Contains(t, err.Error(), "audio_format")
	require.Zero(t, synth.calls)
}

func TestGenerate_ContentTypes(t *testing.T) {
	t.Parallel()

	svc := NewService(fixedSynth([]byte("bytes")), time.Second, 0)

	_, ct, err := svc.Generate(context.Background(), Request{Text: "Hello", Voice: "alloy", Format: FormatMP3})
	require.NoError(t, err)
	require.Equal(t, "audio/mpeg", ct)

	_, ct, err = svc.Generate(context.Background(), Request{Text: "Hello", Voice: "alloy", Format: FormatAAC})
	require.NoError(t, err)
	require.Equal(t, "audio/aac", ct)
}

func TestGenerate_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	synth := &fakeSynth{fn: func(call int) ([]byte, error) {
		if call == 1 {
			return nil, errors.New("provider hiccup")
		}
		return []byte("audio"), nil
	}}
	svc := NewService(synth, time.Second, 2)

	audio, ct, err := svc.Generate(context.Background(), Request{Text: "Hello", Voice: "alloy", Format: FormatMP3})
	require.NoError(t, err)
	require.Equal(t, []byte("audio"), audio)
	require.Equal(t, "audio/mpeg", ct)
	require.Equal(t, 2, synth.calls)
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	t.Parallel()

	synth := &fakeSynth{fn: func(int) ([]byte, error) {
		return nil, errors.New("provider down")
	}}
	svc := NewService(synth, time.Second, 1)

	_, _, err := svc.Generate(context.Background(), Request{Text: "Hello", Voice: "alloy", Format: FormatMP3})
	require.ErrorIs(t, err, shared.ErrUpstream)
	// initial attempt plus one retry
	require.Equal(t, 2, synth.calls)
}
