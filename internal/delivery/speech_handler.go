package delivery

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/vgen-labs/vgen-backend/internal/shared"
	"github.com/vgen-labs/vgen-backend/internal/speech"
)

type SpeechHandler struct {
	speech *speech.Service
	log    *zap.SugaredLogger
}

func NewSpeechHandler(speech *speech.Service, log *zap.SugaredLogger) *SpeechHandler {
	return &SpeechHandler{speech: speech, log: log}
}

// Generate synthesizes the request text and streams the audio bytes back.
func (h *SpeechHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text        string `json:"text"`
		Voice       string `json:"voice"`
		AudioFormat string `json:"audio_format"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	audio, contentType, err := h.speech.Generate(r.Context(), speech.Request{
		Text:   req.Text,
		Voice:  req.Voice,
		Format: req.AudioFormat,
	})
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, shared.ErrUpstream):
			h.log.Errorw("synthesis failed",
				"subject", SubjectFromContext(r.Context()),
				"voice", req.Voice,
				"error", err,
			)
			respondError(w, http.StatusBadGateway, "audio generation failed")
		default:
			h.log.Errorw("unexpected error", "error", err)
			respondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
