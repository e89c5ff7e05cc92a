package dto

import (
	"time"

	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
)

// ============ Wire contract (HTTP layer) ============

// TextMessageRequest is the body of POST /api/v1/chat/text.
type TextMessageRequest struct {
	Role       string `json:"role"`                  // doctor or patient
	Text       string `json:"text"`                  // message as typed
	TargetLang string `json:"target_lang,omitempty"` // optional; derived from role when empty
}

// TurnResponse is the wire shape of one stored turn. Audio is referenced by
// URL, never embedded.
type TurnResponse struct {
	ID               int64     `json:"id"`
	Role             string    `json:"role"`
	OriginalText     string    `json:"original_text"`
	OriginalLang     string    `json:"original_lang"`
	TranslatedText   string    `json:"translated_text"`
	TargetLang       string    `json:"target_lang"`
	OriginalAudioURL string    `json:"original_audio_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// SummaryResponse is the body of GET /api/v1/summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// LanguageConfigRequest is the body of PUT /api/v1/config/language.
type LanguageConfigRequest struct {
	PatientLanguage string `json:"patient_language"`
}

// LanguageConfigResponse is the body of GET /api/v1/config/language.
type LanguageConfigResponse struct {
	PatientLanguage string   `json:"patient_language"`
	Supported       []string `json:"supported"`
}

// FromTurn converts a domain turn to its wire shape.
func FromTurn(t *entity.Turn) TurnResponse {
	return TurnResponse{
		ID:               t.ID,
		Role:             string(t.Role),
		OriginalText:     t.OriginalText,
		OriginalLang:     t.OriginalLang,
		TranslatedText:   t.TranslatedText,
		TargetLang:       t.TargetLang,
		OriginalAudioURL: t.AudioURL,
		CreatedAt:        t.CreatedAt,
	}
}

// FromTurns converts a slice of turns, keeping order. It always returns a
// non-nil slice so an empty history serializes as [] rather than null.
func FromTurns(turns []*entity.Turn) []TurnResponse {
	out := make([]TurnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, FromTurn(t))
	}
	return out
}
