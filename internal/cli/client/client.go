package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/types"
)

// APIClient wraps Hertz Client for HTTP communication with the API server
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	// Normalize server URL
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	// Add scheme if missing
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	// Parse and validate
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	// Return scheme://host (no path, no trailing slash)
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// apiError converts a non-2xx response body into a readable error
func apiError(statusCode int, body []byte) error {
	var envelope types.ErrorBody
	if err := sonic.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%s (HTTP %d)", envelope.Message, statusCode)
	}
	return fmt.Errorf("request failed with HTTP status: %d", statusCode)
}

// SendText submits a typed message and returns the stored turn
func (c *APIClient) SendText(ctx context.Context, role, text, targetLang string) (*types.Turn, error) {
	reqBody := types.TextMessageRequest{
		Role:       role,
		Text:       text,
		TargetLang: targetLang,
	}
	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointChatText)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, apiError(resp.StatusCode(), resp.Body())
	}

	var turn types.Turn
	if err := sonic.Unmarshal(resp.Body(), &turn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &turn, nil
}

// SendAudio submits a recorded clip and returns the stored turn
func (c *APIClient) SendAudio(ctx context.Context, role, targetLang, filename string, audio []byte) (*types.Turn, error) {
	// Build the multipart body by hand so the boundary is under our control
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.WriteField("role", role); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if targetLang != "" {
		if err := writer.WriteField("target_lang", targetLang); err != nil {
			return nil, fmt.Errorf("failed to build multipart body: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointChatAudio)
	req.Header.SetContentTypeBytes([]byte(writer.FormDataContentType()))
	req.SetBody(buf.Bytes())

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, apiError(resp.StatusCode(), resp.Body())
	}

	var turn types.Turn
	if err := sonic.Unmarshal(resp.Body(), &turn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &turn, nil
}

// History fetches the consultation log, optionally filtered by a substring
func (c *APIClient) History(ctx context.Context, query string) ([]types.Turn, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	uri := c.server + endpointHistory
	if query != "" {
		uri += "?q=" + url.QueryEscape(query)
	}

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(uri)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, apiError(resp.StatusCode(), resp.Body())
	}

	var turns []types.Turn
	if err := sonic.Unmarshal(resp.Body(), &turns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return turns, nil
}

// Summary fetches the clinical summary for the current consultation
func (c *APIClient) Summary(ctx context.Context) (string, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointSummary)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", apiError(resp.StatusCode(), resp.Body())
	}

	var summaryResp types.SummaryResponse
	if err := sonic.Unmarshal(resp.Body(), &summaryResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return summaryResp.Summary, nil
}

// ClearSession starts a fresh consultation on the server
func (c *APIClient) ClearSession(ctx context.Context) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodDelete)
	req.SetRequestURI(c.server + endpointSession)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		return apiError(statusCode, resp.Body())
	}

	return nil
}

// GetLanguage fetches the patient language configuration
func (c *APIClient) GetLanguage(ctx context.Context) (*types.LanguageConfig, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointLanguage)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, apiError(resp.StatusCode(), resp.Body())
	}

	var cfg types.LanguageConfig
	if err := sonic.Unmarshal(resp.Body(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &cfg, nil
}

// SetLanguage changes the patient language on the server
func (c *APIClient) SetLanguage(ctx context.Context, language string) (*types.LanguageConfig, error) {
	bodyBytes, err := sonic.Marshal(types.LanguageConfigRequest{PatientLanguage: language})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPut)
	req.SetRequestURI(c.server + endpointLanguage)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, apiError(resp.StatusCode(), resp.Body())
	}

	var cfg types.LanguageConfig
	if err := sonic.Unmarshal(resp.Body(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &cfg, nil
}
