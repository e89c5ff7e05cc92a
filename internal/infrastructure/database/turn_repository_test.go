package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gaurav-code098/Neo-Translate/internal/config"
	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
	dbpkg "github.com/gaurav-code098/Neo-Translate/pkg/database"
)

func newTestRepo(t *testing.T) domain.TurnRepository {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, err := dbpkg.Open(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "turns.db"),
	}, logger)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewTurnRepository(db)
}

func sampleTurn(text string) *entity.Turn {
	return &entity.Turn{
		Role:           entity.RolePatient,
		OriginalText:   text,
		OriginalLang:   "Spanish",
		TranslatedText: "translated " + text,
		TargetLang:     entity.LangEnglish,
	}
}

func TestAppendAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		turn, err := repo.Append(ctx, sampleTurn(fmt.Sprintf("message %d", i)))
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if turn.ID <= prev {
			t.Errorf("ids not strictly increasing: %d after %d", turn.ID, prev)
		}
		if turn.CreatedAt.IsZero() {
			t.Error("expected created_at to be set")
		}
		prev = turn.ID
	}
}

func TestAppendRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in := &entity.Turn{
		Role:           entity.RoleDoctor,
		OriginalText:   "How long have you had this pain?",
		OriginalLang:   entity.LangEnglish,
		TranslatedText: "¿Cuánto tiempo lleva con este dolor?",
		TargetLang:     "Spanish",
		AudioURL:       "/static/audio/audio_test.webm",
	}
	stored, err := repo.Append(ctx, in)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	turns, err := repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}

	got := turns[0]
	if got.ID != stored.ID {
		t.Errorf("id mismatch: %d vs %d", got.ID, stored.ID)
	}
	if got.Role != entity.RoleDoctor {
		t.Errorf("unexpected role: %q", got.Role)
	}
	if got.OriginalText != in.OriginalText || got.TranslatedText != in.TranslatedText {
		t.Error("text fields did not round-trip")
	}
	if got.OriginalLang != in.OriginalLang || got.TargetLang != in.TargetLang {
		t.Error("language fields did not round-trip")
	}
	if got.AudioURL != in.AudioURL {
		t.Errorf("audio URL mismatch: %q", got.AudioURL)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at did not round-trip")
	}
}

func TestAppendWithoutAudioStoresNull(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Append(ctx, sampleTurn("typed message")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	turns, err := repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if turns[0].AudioURL != "" {
		t.Errorf("expected empty audio URL, got %q", turns[0].AudioURL)
	}
}

func TestReadAllKeepsInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := repo.Append(ctx, sampleTurn(fmt.Sprintf("message %d", i))); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	turns, err := repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(turns) != 10 {
		t.Fatalf("expected 10 turns, got %d", len(turns))
	}
	for i, turn := range turns {
		want := fmt.Sprintf("message %d", i)
		if turn.OriginalText != want {
			t.Errorf("position %d: expected %q, got %q", i, want, turn.OriginalText)
		}
	}
}

func TestClearIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Append(ctx, sampleTurn("message")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	turns, err := repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty log after clear, got %d turns", len(turns))
	}

	// Clearing again must succeed and leave the log empty
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestIDsKeepIncreasingAfterClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Append(ctx, sampleTurn("before clear"))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	second, err := repo.Append(ctx, sampleTurn("after clear"))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if second.ID <= first.ID {
		t.Errorf("ids must keep increasing across a clear: %d then %d", first.ID, second.ID)
	}
}

func TestConcurrentAppends(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := repo.Append(ctx, sampleTurn(fmt.Sprintf("message %d", n))); err != nil {
				t.Errorf("Append failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	turns, err := repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(turns) != workers {
		t.Fatalf("expected %d turns, got %d", workers, len(turns))
	}

	seen := make(map[int64]bool)
	for _, turn := range turns {
		if seen[turn.ID] {
			t.Errorf("duplicate id %d", turn.ID)
		}
		seen[turn.ID] = true
	}
}
