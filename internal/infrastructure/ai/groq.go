package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/gaurav-code098/Neo-Translate/internal/config"
	"github.com/gaurav-code098/Neo-Translate/internal/domain"
)

// gateway is the TranslationGateway implementation backed by an
// OpenAI-compatible provider (Groq in the default configuration). Every
// method is a single synchronous attempt; failures surface to the caller
// without retry.
type gateway struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	timeout            time.Duration
	logger             *slog.Logger
}

// defaultTimeout bounds provider calls when the config leaves ai.timeout
// unset.
const defaultTimeout = 60 * time.Second

// NewGateway creates a TranslationGateway from the AI configuration.
func NewGateway(cfg config.AIConfig, logger *slog.Logger) domain.TranslationGateway {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger.Info("translation gateway created",
		"base_url", cfg.BaseURL,
		"chat_model", cfg.ChatModel,
		"transcription_model", cfg.TranscriptionModel,
		"timeout", timeout.String(),
	)

	return &gateway{
		client:             openai.NewClientWithConfig(clientCfg),
		chatModel:          cfg.ChatModel,
		transcriptionModel: cfg.TranscriptionModel,
		timeout:            timeout,
		logger:             logger,
	}
}

// withTimeout puts the configured deadline on a provider call. A hung
// provider must surface as a gateway error, never hold the request open.
func (g *gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

// Transcribe sends a recorded clip to the speech-to-text model. The provider
// detects the spoken language itself; the caller decides what to do with an
// empty transcription.
func (g *gateway) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", domain.NewTranscriptionError(errors.New("empty audio payload"))
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    g.transcriptionModel,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		g.logger.Error("transcription request failed", "error", err)
		return "", domain.NewTranscriptionError(err)
	}

	return strings.TrimSpace(resp.Text), nil
}

// Translate renders text from sourceLang into targetLang via a chat
// completion. A failed or empty completion is an explicit error; the
// original text is never passed through as a fake translation.
func (g *gateway) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	systemPrompt := fmt.Sprintf(
		"You are a professional medical translator. Translate the following text from %s into %s. "+
			"Do not explain. Do not add notes. Return only the translated text.",
		sourceLang, targetLang,
	)

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.3,
	})
	if err != nil {
		g.logger.Error("translation request failed",
			"source_lang", sourceLang,
			"target_lang", targetLang,
			"error", err,
		)
		return "", domain.NewTranslationError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewTranslationError(errors.New("provider returned no choices"))
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	translated = strings.Trim(translated, `"`)
	if translated == "" {
		return "", domain.NewTranslationError(errors.New("provider returned an empty translation"))
	}
	return translated, nil
}

// Summarize produces the clinical report from the composed scribe prompt.
func (g *gateway) Summarize(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		g.logger.Error("summarization request failed", "error", err)
		return "", domain.NewSummarizationError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewSummarizationError(errors.New("provider returned no choices"))
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", domain.NewSummarizationError(errors.New("provider returned an empty summary"))
	}
	return summary, nil
}
