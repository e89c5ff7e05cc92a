package domain

import (
	"context"

	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
)

// ============ Requests used by the usecase layer ============

// SubmitTextRequest is one typed message entering the pipeline.
type SubmitTextRequest struct {
	Role       entity.Role
	Text       string
	TargetLang string // optional; resolved from the role when empty
}

// SubmitAudioRequest is one recorded clip entering the pipeline.
type SubmitAudioRequest struct {
	Role       entity.Role
	TargetLang string // optional; resolved from the role when empty
	Filename   string // original upload name, used for the blob extension
	Data       []byte
}

// TranslationGateway is the provider boundary. Its three operations are the
// only network-facing calls in the system: synchronous, single attempt, no
// internal retry. A failure is always an explicit error, never a silent
// echo of the input.
type TranslationGateway interface {
	// Transcribe converts a recorded clip to text.
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)

	// Translate renders text from sourceLang into targetLang.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Summarize produces a clinical report from a composed prompt holding
	// the report instructions and the full transcript.
	Summarize(ctx context.Context, prompt string) (string, error)
}

// TurnRepository is the ordered append-only log of the current consultation.
type TurnRepository interface {
	// Append stores a turn and returns it with its assigned ID. IDs are
	// unique and strictly increasing; appends are serialized.
	Append(ctx context.Context, turn *entity.Turn) (*entity.Turn, error)

	// ReadAll returns a consistent snapshot of all turns in ID order.
	ReadAll(ctx context.Context) ([]*entity.Turn, error)

	// Clear removes every turn. Clearing an empty log is a no-op.
	Clear(ctx context.Context) error
}

// AudioStore persists raw audio clips and exposes them by URL. Clips live
// for the duration of the consultation and are released only by Clear.
type AudioStore interface {
	// Save writes a clip and returns the URL it is served under.
	Save(data []byte, ext string) (string, error)

	// Clear removes all stored clips.
	Clear() error
}

// ChatUsecase turns raw input into stored turns and serves the read model.
type ChatUsecase interface {
	// SubmitText translates a typed message and appends the resulting turn.
	SubmitText(ctx context.Context, req *SubmitTextRequest) (*entity.Turn, error)

	// SubmitAudio stores the clip, transcribes it, then proceeds as SubmitText.
	SubmitAudio(ctx context.Context, req *SubmitAudioRequest) (*entity.Turn, error)

	// History returns the turns in order, optionally filtered by a
	// case-insensitive substring match over original and translated text.
	History(ctx context.Context, query string) ([]*entity.Turn, error)
}

// SummaryUsecase produces the on-demand clinical report.
type SummaryUsecase interface {
	// GenerateSummary reads the full log and summarizes it. An empty log
	// returns a fixed placeholder without calling the provider.
	GenerateSummary(ctx context.Context) (string, error)
}

// SessionUsecase owns the single live consultation and its configuration.
type SessionUsecase interface {
	// Attach starts a fresh consultation: clears all turns and audio clips.
	// Idempotent; called on every new client attachment.
	Attach(ctx context.Context) error

	// SetPatientLanguage replaces the configured patient-side language.
	SetPatientLanguage(lang string) error

	// PatientLanguage returns the currently configured patient-side language.
	PatientLanguage() string
}
