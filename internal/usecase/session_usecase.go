package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
)

// sessionUsecase owns the single live consultation. It clears state on
// client attachment and holds the mutable patient-language setting that the
// pipeline reads at submission time. The language is an explicit injected
// dependency rather than ambient process state so the pipeline stays
// testable without a running server.
type sessionUsecase struct {
	turnRepo   domain.TurnRepository
	audioStore domain.AudioStore
	logger     *slog.Logger

	mu          sync.RWMutex
	patientLang string
}

// NewSessionUsecase creates a SessionUsecase with the given default
// patient language. defaultLang must be a valid patient language; the
// config layer validates it before we get here.
func NewSessionUsecase(
	turnRepo domain.TurnRepository,
	audioStore domain.AudioStore,
	defaultLang string,
	logger *slog.Logger,
) domain.SessionUsecase {
	return &sessionUsecase{
		turnRepo:    turnRepo,
		audioStore:  audioStore,
		patientLang: defaultLang,
		logger:      logger,
	}
}

// Attach resets the consultation: every turn and every stored audio clip is
// removed. Clearing twice in a row is fine; both calls leave an empty log.
func (u *sessionUsecase) Attach(ctx context.Context) error {
	if err := u.turnRepo.Clear(ctx); err != nil {
		return err
	}
	if err := u.audioStore.Clear(); err != nil {
		return err
	}

	u.logger.Info("consultation cleared")
	return nil
}

// SetPatientLanguage replaces the configured patient-side language.
func (u *sessionUsecase) SetPatientLanguage(lang string) error {
	if !entity.IsPatientLanguage(lang) {
		return domain.NewInvalidInputError(fmt.Sprintf("unsupported patient language: %q", lang))
	}

	u.mu.Lock()
	u.patientLang = lang
	u.mu.Unlock()

	u.logger.Info("patient language changed", "language", lang)
	return nil
}

// PatientLanguage returns the current patient-side language. An in-flight
// submission uses the value current at its own read; that race is benign.
func (u *sessionUsecase) PatientLanguage() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.patientLang
}
