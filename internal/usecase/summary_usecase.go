package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
)

// summaryUsecase builds the on-demand clinical report. It is stateless
// beyond the read: every call takes a fresh snapshot of the log and
// reprocesses the whole transcript, which is fine because a consultation is
// bounded in length.
type summaryUsecase struct {
	gateway  domain.TranslationGateway
	turnRepo domain.TurnRepository
	logger   *slog.Logger
}

// NewSummaryUsecase creates a SummaryUsecase.
func NewSummaryUsecase(
	gateway domain.TranslationGateway,
	turnRepo domain.TurnRepository,
	logger *slog.Logger,
) domain.SummaryUsecase {
	return &summaryUsecase{
		gateway:  gateway,
		turnRepo: turnRepo,
		logger:   logger,
	}
}

// GenerateSummary reads the log and asks the provider for a structured
// report. An empty log short-circuits to the fixed placeholder without
// calling the provider.
func (u *summaryUsecase) GenerateSummary(ctx context.Context) (string, error) {
	turns, err := u.turnRepo.ReadAll(ctx)
	if err != nil {
		return "", err
	}
	if len(turns) == 0 {
		return EmptySummaryText, nil
	}

	var transcript strings.Builder
	for _, t := range turns {
		transcript.WriteString(strings.ToUpper(string(t.Role)))
		transcript.WriteString(": ")
		transcript.WriteString(t.TranslatedText)
		transcript.WriteString(" (Original: ")
		transcript.WriteString(t.OriginalText)
		transcript.WriteString(")\n")
	}

	summary, err := u.gateway.Summarize(ctx, SummaryInstruction+transcript.String())
	if err != nil {
		u.logger.Error("summary generation failed", "turns", len(turns), "error", err)
		return "", err
	}

	u.logger.Info("summary generated", "turns", len(turns))
	return summary, nil
}
