//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"

	"github.com/gaurav-code098/Neo-Translate/internal/config"
	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/handler"
	"github.com/gaurav-code098/Neo-Translate/internal/handler/dto"
	"github.com/gaurav-code098/Neo-Translate/internal/infrastructure/blob"
	infradb "github.com/gaurav-code098/Neo-Translate/internal/infrastructure/database"
	"github.com/gaurav-code098/Neo-Translate/internal/router"
	"github.com/gaurav-code098/Neo-Translate/internal/usecase"
	dbpkg "github.com/gaurav-code098/Neo-Translate/pkg/database"
)

// stubGateway stands in for the AI provider so the round trip runs without
// network access or an API key
type stubGateway struct {
	failTranslation bool
}

func (g *stubGateway) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	return "Me duele la cabeza", nil
}

func (g *stubGateway) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if g.failTranslation {
		return "", domain.NewTranslationError(fmt.Errorf("provider unavailable"))
	}
	return "[" + targetLang + "] " + text, nil
}

func (g *stubGateway) Summarize(ctx context.Context, prompt string) (string, error) {
	return "**PATIENT SYMPTOMS:** headache", nil
}

// TestConsultationHTTP runs the full HTTP round trip against a real server,
// a real sqlite database, and real blob storage.
// Run with: go test -tags integration ./test/integration/...
func TestConsultationHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tmp := t.TempDir()
	audioDir := filepath.Join(tmp, "audio")

	db, err := dbpkg.Open(config.DatabaseConfig{Path: filepath.Join(tmp, "turns.db")}, logger)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	audioStore, err := blob.NewAudioStore(audioDir)
	if err != nil {
		t.Fatalf("failed to create audio store: %v", err)
	}

	gateway := &stubGateway{}
	turnRepo := infradb.NewTurnRepository(db)
	sessionUC := usecase.NewSessionUsecase(turnRepo, audioStore, "Spanish", logger)
	chatUC := usecase.NewChatUsecase(gateway, turnRepo, audioStore, sessionUC, logger)
	summaryUC := usecase.NewSummaryUsecase(gateway, turnRepo, logger)

	chatHandler := handler.NewChatHandler(chatUC, logger)
	consultationHandler := handler.NewConsultationHandler(sessionUC, summaryUC, logger)
	healthHandler := handler.NewHealthHandler(db, audioDir)

	h := server.New(
		server.WithHostPorts("127.0.0.1:18080"),
		server.WithTransport(netpoll.NewTransporter),
	)
	router.Setup(h, chatHandler, consultationHandler, healthHandler, audioDir)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()

	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := "http://127.0.0.1:18080"
	client := &http.Client{Timeout: 30 * time.Second}

	t.Run("ping", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/ping")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("readiness", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/health/ready")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("patient text message round trip", func(t *testing.T) {
		turn := sendText(t, client, baseURL, "patient", "Me duele la cabeza", "")

		if turn.Role != "patient" {
			t.Errorf("unexpected role: %q", turn.Role)
		}
		if turn.OriginalLang != "Spanish" {
			t.Errorf("expected source Spanish, got %q", turn.OriginalLang)
		}
		if turn.TargetLang != "English" {
			t.Errorf("expected target English, got %q", turn.TargetLang)
		}
		if turn.TranslatedText != "[English] Me duele la cabeza" {
			t.Errorf("unexpected translation: %q", turn.TranslatedText)
		}
		if turn.ID == 0 {
			t.Error("expected a positive turn id")
		}
	})

	t.Run("doctor text message round trip", func(t *testing.T) {
		turn := sendText(t, client, baseURL, "doctor", "How long have you had this pain?", "")

		if turn.OriginalLang != "English" || turn.TargetLang != "Spanish" {
			t.Errorf("unexpected direction: %s -> %s", turn.OriginalLang, turn.TargetLang)
		}
	})

	t.Run("history returns turns in order", func(t *testing.T) {
		turns := fetchHistory(t, client, baseURL, "")
		if len(turns) != 2 {
			t.Fatalf("expected 2 turns, got %d", len(turns))
		}
		if turns[0].Role != "patient" || turns[1].Role != "doctor" {
			t.Error("turns out of submission order")
		}
		if turns[1].ID <= turns[0].ID {
			t.Error("ids not increasing")
		}
	})

	t.Run("history substring filter", func(t *testing.T) {
		turns := fetchHistory(t, client, baseURL, "?q=cabeza")
		if len(turns) != 1 {
			t.Fatalf("expected 1 matching turn, got %d", len(turns))
		}
		if turns[0].OriginalText != "Me duele la cabeza" {
			t.Errorf("unexpected match: %q", turns[0].OriginalText)
		}
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"role": "nurse", "text": "hello"})
		resp, err := client.Post(baseURL+"/api/v1/chat/text", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.StatusCode)
		}
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		gateway.failTranslation = true
		defer func() { gateway.failTranslation = false }()

		body, _ := json.Marshal(map[string]string{"role": "patient", "text": "hola"})
		resp, err := client.Post(baseURL+"/api/v1/chat/text", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadGateway {
			t.Fatalf("expected status 502, got %d", resp.StatusCode)
		}

		// The failed submission must not have grown the log
		turns := fetchHistory(t, client, baseURL, "")
		if len(turns) != 2 {
			t.Errorf("expected log unchanged at 2 turns, got %d", len(turns))
		}
	})

	t.Run("summary", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/api/v1/summary")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var summaryResp dto.SummaryResponse
		if err := json.NewDecoder(resp.Body).Decode(&summaryResp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if summaryResp.Summary != "**PATIENT SYMPTOMS:** headache" {
			t.Errorf("unexpected summary: %q", summaryResp.Summary)
		}
	})

	t.Run("language config", func(t *testing.T) {
		body, _ := json.Marshal(dto.LanguageConfigRequest{PatientLanguage: "French"})
		req, _ := http.NewRequest(http.MethodPut, baseURL+"/api/v1/config/language", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var cfgResp dto.LanguageConfigResponse
		if err := json.NewDecoder(resp.Body).Decode(&cfgResp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if cfgResp.PatientLanguage != "French" {
			t.Errorf("expected French, got %q", cfgResp.PatientLanguage)
		}

		// Subsequent patient messages must follow the new language
		turn := sendText(t, client, baseURL, "patient", "J'ai mal à la tête", "")
		if turn.OriginalLang != "French" {
			t.Errorf("expected source French after config change, got %q", turn.OriginalLang)
		}
	})

	t.Run("session clear", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, baseURL+"/session", nil)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", resp.StatusCode)
		}

		turns := fetchHistory(t, client, baseURL, "")
		if len(turns) != 0 {
			t.Errorf("expected empty log after session clear, got %d turns", len(turns))
		}

		// Clearing again is harmless
		req, _ = http.NewRequest(http.MethodDelete, baseURL+"/session", nil)
		resp, err = client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("expected status 204 on repeat clear, got %d", resp.StatusCode)
		}
	})
}

// sendText submits a typed message and returns the stored turn
func sendText(t *testing.T, client *http.Client, baseURL, role, text, targetLang string) *dto.TurnResponse {
	t.Helper()

	reqBody := dto.TextMessageRequest{Role: role, Text: text, TargetLang: targetLang}
	bodyBytes, _ := json.Marshal(reqBody)

	resp, err := client.Post(baseURL+"/api/v1/chat/text", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status 200, got %d, body: %s", resp.StatusCode, string(body))
	}

	var turn dto.TurnResponse
	if err := json.NewDecoder(resp.Body).Decode(&turn); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return &turn
}

// fetchHistory reads the consultation log, optionally with a raw query string
func fetchHistory(t *testing.T, client *http.Client, baseURL, query string) []dto.TurnResponse {
	t.Helper()

	resp, err := client.Get(baseURL + "/api/v1/history" + query)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var turns []dto.TurnResponse
	if err := json.NewDecoder(resp.Body).Decode(&turns); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return turns
}
