package usecase

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
)

// chatUsecase is the message pipeline: it takes one piece of raw input,
// resolves the translation direction from the role, calls the provider, and
// appends exactly one turn. A provider failure anywhere leaves the log
// unchanged; no partial turn is ever persisted.
type chatUsecase struct {
	gateway    domain.TranslationGateway
	turnRepo   domain.TurnRepository
	audioStore domain.AudioStore
	session    domain.SessionUsecase
	logger     *slog.Logger
}

// NewChatUsecase creates the message pipeline.
//
// Parameters:
//   - gateway: provider boundary for transcription and translation
//   - turnRepo: ordered conversation log
//   - audioStore: blob storage for recorded clips
//   - session: source of the current patient language
//   - logger: structured logger
func NewChatUsecase(
	gateway domain.TranslationGateway,
	turnRepo domain.TurnRepository,
	audioStore domain.AudioStore,
	session domain.SessionUsecase,
	logger *slog.Logger,
) domain.ChatUsecase {
	return &chatUsecase{
		gateway:    gateway,
		turnRepo:   turnRepo,
		audioStore: audioStore,
		session:    session,
		logger:     logger,
	}
}

// SubmitText validates the message, translates it, and appends the turn.
func (u *chatUsecase) SubmitText(ctx context.Context, req *domain.SubmitTextRequest) (*entity.Turn, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request is required")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, domain.NewInvalidInputError("message text is required")
	}

	sourceLang, targetLang, err := u.resolveDirection(req.Role, req.TargetLang)
	if err != nil {
		return nil, err
	}

	return u.translateAndAppend(ctx, req.Role, text, sourceLang, targetLang, "")
}

// SubmitAudio stores the clip, transcribes it, and continues like a text
// submission with the clip URL attached. A clip that transcribes to nothing
// is invalid input and produces no turn; the stored blob stays behind until
// the next session clear.
func (u *chatUsecase) SubmitAudio(ctx context.Context, req *domain.SubmitAudioRequest) (*entity.Turn, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request is required")
	}
	if len(req.Data) == 0 {
		return nil, domain.NewInvalidInputError("audio payload is required")
	}

	sourceLang, targetLang, err := u.resolveDirection(req.Role, req.TargetLang)
	if err != nil {
		return nil, err
	}

	audioURL, err := u.audioStore.Save(req.Data, filepath.Ext(req.Filename))
	if err != nil {
		return nil, err
	}

	text, err := u.gateway.Transcribe(ctx, req.Data, req.Filename)
	if err != nil {
		u.logger.Error("transcription failed", "role", req.Role, "error", err)
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewInvalidInputError("the recording contains no speech")
	}

	return u.translateAndAppend(ctx, req.Role, text, sourceLang, targetLang, audioURL)
}

// History returns the ordered log, optionally filtered by a case-insensitive
// substring over original and translated text. The filter is a read-only
// view; it never touches stored state.
func (u *chatUsecase) History(ctx context.Context, query string) ([]*entity.Turn, error) {
	turns, err := u.turnRepo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return turns, nil
	}

	q := strings.ToLower(query)
	filtered := make([]*entity.Turn, 0, len(turns))
	for _, t := range turns {
		if strings.Contains(strings.ToLower(t.OriginalText), q) ||
			strings.Contains(strings.ToLower(t.TranslatedText), q) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// translateAndAppend runs the shared tail of both submission paths. The
// gateway call happens before any store mutation, so a translation failure
// leaves the log exactly as it was.
func (u *chatUsecase) translateAndAppend(ctx context.Context, role entity.Role, text, sourceLang, targetLang, audioURL string) (*entity.Turn, error) {
	translated, err := u.gateway.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		u.logger.Error("translation failed",
			"role", role,
			"source_lang", sourceLang,
			"target_lang", targetLang,
			"error", err,
		)
		return nil, err
	}

	turn, err := u.turnRepo.Append(ctx, &entity.Turn{
		Role:           role,
		OriginalText:   text,
		OriginalLang:   sourceLang,
		TranslatedText: translated,
		TargetLang:     targetLang,
		AudioURL:       audioURL,
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("turn appended",
		"turn_id", turn.ID,
		"role", turn.Role,
		"source_lang", sourceLang,
		"target_lang", targetLang,
		"has_audio", audioURL != "",
	)
	return turn, nil
}

// resolveDirection maps a role onto its language pair. The doctor always
// speaks English toward the patient language; the patient always speaks the
// configured patient language toward English. A requested target that
// contradicts the role is rejected rather than guessed around.
func (u *chatUsecase) resolveDirection(role entity.Role, requestedTarget string) (sourceLang, targetLang string, err error) {
	if !role.Valid() {
		return "", "", domain.NewInvalidInputError("role must be 'doctor' or 'patient'")
	}

	switch role {
	case entity.RoleDoctor:
		sourceLang = entity.LangEnglish
		targetLang = requestedTarget
		if targetLang == "" {
			targetLang = u.session.PatientLanguage()
		}
		if !entity.IsPatientLanguage(targetLang) {
			return "", "", domain.NewInvalidInputError("doctor messages must target a supported patient language")
		}
	case entity.RolePatient:
		sourceLang = u.session.PatientLanguage()
		if requestedTarget != "" && requestedTarget != entity.LangEnglish {
			return "", "", domain.NewInvalidInputError("patient messages are always translated into English")
		}
		targetLang = entity.LangEnglish
	}

	return sourceLang, targetLang, nil
}
