package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
)

func TestGenerateSummaryEmptyLog(t *testing.T) {
	gateway := &fakeGateway{}
	repo := newFakeTurnRepo()
	summarizer := NewSummaryUsecase(gateway, repo, testLogger())

	summary, err := summarizer.GenerateSummary(context.Background())
	if err != nil {
		t.Fatalf("GenerateSummary failed: %v", err)
	}

	if summary != EmptySummaryText {
		t.Errorf("expected placeholder %q, got %q", EmptySummaryText, summary)
	}
	if len(gateway.summarizeCalls) != 0 {
		t.Error("the provider should not be called for an empty log")
	}
}

func TestGenerateSummaryTranscriptFormat(t *testing.T) {
	gateway := &fakeGateway{
		summarizeFn: func(ctx context.Context, prompt string) (string, error) {
			return "**PATIENT SYMPTOMS:** headache", nil
		},
	}
	repo := newFakeTurnRepo()

	ctx := context.Background()
	seed := []*entity.Turn{
		{Role: entity.RolePatient, OriginalText: "Me duele la cabeza", OriginalLang: "Spanish", TranslatedText: "My head hurts", TargetLang: entity.LangEnglish},
		{Role: entity.RoleDoctor, OriginalText: "How long?", OriginalLang: entity.LangEnglish, TranslatedText: "¿Cuánto tiempo?", TargetLang: "Spanish"},
	}
	for _, turn := range seed {
		if _, err := repo.Append(ctx, turn); err != nil {
			t.Fatalf("seed append failed: %v", err)
		}
	}

	summarizer := NewSummaryUsecase(gateway, repo, testLogger())
	summary, err := summarizer.GenerateSummary(ctx)
	if err != nil {
		t.Fatalf("GenerateSummary failed: %v", err)
	}
	if summary != "**PATIENT SYMPTOMS:** headache" {
		t.Errorf("unexpected summary: %q", summary)
	}

	if len(gateway.summarizeCalls) != 1 {
		t.Fatalf("expected 1 summarize call, got %d", len(gateway.summarizeCalls))
	}
	prompt := gateway.summarizeCalls[0]

	if !strings.HasPrefix(prompt, SummaryInstruction) {
		t.Error("prompt should start with the scribe instruction")
	}
	if !strings.Contains(prompt, "PATIENT: My head hurts (Original: Me duele la cabeza)\n") {
		t.Errorf("patient line missing or malformed in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "DOCTOR: ¿Cuánto tiempo? (Original: How long?)\n") {
		t.Errorf("doctor line missing or malformed in prompt:\n%s", prompt)
	}

	// Lines must appear in log order
	patientIdx := strings.Index(prompt, "PATIENT:")
	doctorIdx := strings.Index(prompt, "DOCTOR:")
	if patientIdx < 0 || doctorIdx < 0 || doctorIdx < patientIdx {
		t.Error("transcript lines out of order")
	}
}

func TestGenerateSummaryProviderFailure(t *testing.T) {
	gateway := &fakeGateway{
		summarizeFn: func(ctx context.Context, prompt string) (string, error) {
			return "", domain.NewSummarizationError(fmt.Errorf("provider unavailable"))
		},
	}
	repo := newFakeTurnRepo()

	ctx := context.Background()
	if _, err := repo.Append(ctx, &entity.Turn{Role: entity.RoleDoctor, OriginalText: "hi", TranslatedText: "hola"}); err != nil {
		t.Fatalf("seed append failed: %v", err)
	}

	summarizer := NewSummaryUsecase(gateway, repo, testLogger())
	_, err := summarizer.GenerateSummary(ctx)
	if !domain.IsSummarization(err) {
		t.Fatalf("expected summarization error, got %v", err)
	}
}
