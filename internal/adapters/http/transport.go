package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wazap-ai/wazap-go/internal/domain"
	"github.com/wazap-ai/wazap-go/internal/ports"
	"github.com/wazap-ai/wazap-go/pkg/log"
)

// Header names sent on every request.
const (
	HeaderCompanyToken = "X-Company-Token"
	HeaderAccountToken = "X-Account-Token"
	HeaderRequestID    = "X-Request-Id"
)

// maxErrorBody bounds how much of a failed response is kept on APIError.
const maxErrorBody = 64 << 10

var _ ports.Transport = (*Transport)(nil)

// Transport implements ports.Transport over an HTTPClient bound to a base URL
// with a fixed header set.
type Transport struct {
	client  ports.HTTPClient
	baseURL string
	headers http.Header
	timeout time.Duration
	logger  log.Logger
}

// Config describes a Transport.
type Config struct {
	BaseURL string

	// Headers are set on every request.
	Headers map[string]string

	// Timeout bounds each call. Zero means no per-call bound beyond the context.
	Timeout time.Duration
}

// NewTransport creates a new HTTP JSON transport.
func NewTransport(client ports.HTTPClient, cfg Config, logger log.Logger) *Transport {
	headers := make(http.Header, len(cfg.Headers)+2)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}

	if logger == nil {
		logger = log.NewNoopLogger()
	}

	return &Transport{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: headers,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// PostJSON implements ports.Transport.
func (t *Transport) PostJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header = t.headers.Clone()
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	t.logger.Debug("sending request",
		log.String("method", req.Method),
		log.String("path", path),
		log.String("request_id", requestID),
		log.Int("bytes", len(payload)),
	)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	t.logger.Debug("received response",
		log.String("path", path),
		log.String("request_id", requestID),
		log.Int("status", resp.StatusCode),
		log.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newAPIError(resp.StatusCode, respBody)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &domain.DecodeError{StatusCode: resp.StatusCode, Body: respBody, Err: err}
	}
	return nil
}

// newAPIError prefers the server's "message" field and falls back to a
// generic description of the status.
func newAPIError(status int, body []byte) *domain.APIError {
	var envelope struct {
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		msg = envelope.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status code %d", status)
	}
	return &domain.APIError{StatusCode: status, Message: msg, Body: body}
}
