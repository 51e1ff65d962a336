// Package client talks to the Signifyd v2 case API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"casebridge/internal/fraudcase/models"
	"casebridge/internal/platform/config"
	"casebridge/internal/platform/privacy"
	"casebridge/internal/platform/tracer"
	"casebridge/pkg/validation"
)

// DefaultBaseURL is the fraud service API address.
const DefaultBaseURL = "https://app.staging.signifyd.com/v2"

const (
	casesPath      = "/cases"
	defaultTimeout = 10 * time.Second
)

// HTTPDoer is the subset of *http.Client the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Settings are the validated connection parameters.
type Settings struct {
	APIKey  string `validate:"required,notblank"`
	BaseURL string `validate:"required,url"`
}

// LogValue keeps the API key out of logs.
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_key", privacy.RedactSecret(s.APIKey)),
		slog.String("base_url", s.BaseURL),
	)
}

// Client submits cases to the fraud service.
type Client struct {
	settings Settings
	http     HTTPDoer
	timeout  time.Duration
	tracer   tracer.Tracer
}

type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.settings.BaseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(d HTTPDoer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// WithTimeout bounds each CreateCase call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// New reads the API key from scope and builds a client. It fails when the key
// is missing or the settings are malformed. logger only records the redacted
// settings; submission outcomes are logged by the caller.
func New(scope config.ScopeReader, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if scope == nil {
		return nil, newError(ErrorUnavailable, "configuration scope is required", nil)
	}

	c := &Client{
		settings: Settings{
			APIKey:  scope.Value(config.APIKeyPath),
			BaseURL: DefaultBaseURL,
		},
		timeout: defaultTimeout,
		tracer:  tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}

	if err := validation.Validate(c.settings); err != nil {
		return nil, newError(ErrorUnavailable, "invalid fraud service settings", err)
	}
	logger.Info("fraud service client configured", "settings", c.settings)
	return c, nil
}

type createCaseResponse struct {
	InvestigationID json.RawMessage `json:"investigationId"`
}

type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// CreateCase posts a case and returns the investigation id assigned by the
// fraud service. Any non-2xx answer or an empty id is an *Error.
func (c *Client) CreateCase(ctx context.Context, fc *models.Case) (caseID string, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanCaseCreate)
	defer func() {
		if err != nil {
			span.SetAttributes(tracer.String(tracer.AttrErrorCategory, string(CategoryOf(err))))
		}
		span.End(err)
	}()

	if fc == nil {
		return "", newError(ErrorBadData, "case is required", nil)
	}
	body, err := json.Marshal(fc)
	if err != nil {
		return "", newError(ErrorInternal, "failed to marshal case", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.settings.BaseURL+casesPath, bytes.NewReader(body))
	if err != nil {
		return "", newError(ErrorInternal, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.settings.APIKey, "")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", newError(ErrorTimeout, "request timeout", err)
		}
		return "", newError(ErrorProviderOutage, "failed to execute request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(ErrorBadData, "failed to read response body", err)
	}
	span.SetAttributes(tracer.Int(tracer.AttrHTTPStatus, resp.StatusCode))

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		return "", err
	}

	var out createCaseResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", newError(ErrorContractMismatch, "failed to parse response", err)
	}
	id, err := investigationID(out.InvestigationID)
	if err != nil {
		return "", err
	}
	span.SetAttributes(tracer.String(tracer.AttrCaseID, id))
	return id, nil
}

func classifyStatus(status int, body []byte) *Error {
	if status >= 200 && status < 300 {
		return nil
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return statusError(ErrorAuthentication, status, "authentication failed")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var er errorResponse
		if json.Unmarshal(body, &er) == nil && er.Message != "" {
			return statusError(ErrorBadData, status, er.Message)
		}
		return statusError(ErrorBadData, status, "case rejected")
	case http.StatusTooManyRequests:
		return statusError(ErrorRateLimited, status, "rate limited")
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return statusError(ErrorTimeout, status, "upstream timeout")
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusInternalServerError:
		return statusError(ErrorProviderOutage, status, "service unavailable")
	default:
		return statusError(ErrorInternal, status, fmt.Sprintf("unexpected status code: %d", status))
	}
}

// investigationID accepts the id as a JSON number or string.
func investigationID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", newError(ErrorContractMismatch, "response has no investigation id", nil)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return "", newError(ErrorContractMismatch, "response has empty investigation id", nil)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", newError(ErrorContractMismatch, "investigation id has unexpected type", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return "", newError(ErrorContractMismatch, "investigation id is not an integer", err)
	}
	return n.String(), nil
}
