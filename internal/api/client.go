// Package api is the HTTP client for the finance tracker backend: one
// configured request pipeline (base URL, timeout, bearer token) plus typed
// per-entity clients. Every failure is classified once here, surfaced as a
// single toast on the notification bus, and then returned to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	applog "fintrack/internal/log"
	"fintrack/internal/notify"
)

const (
	DefaultBaseURL = "http://localhost:8082/api"
	DefaultTimeout = 10 * time.Second
)

// Fixed user-facing messages per failure class.
const (
	MsgTimeout      = "Request timeout - server took too long to respond"
	MsgConnect      = "Cannot connect to server. Is it running?"
	MsgUnauthorized = "Unauthorized - please log in again"
	MsgForbidden    = "Forbidden - insufficient permissions"
	MsgNotFound     = "Resource not found"
	MsgServerError  = "Server error - please try again later"
)

const (
	FailTimeout      FailureKind = "timeout"
	FailConnection   FailureKind = "connection"
	FailUnauthorized FailureKind = "unauthorized"
	FailForbidden    FailureKind = "forbidden"
	FailNotFound     FailureKind = "not_found"
	FailServer       FailureKind = "server"
	FailStatus       FailureKind = "status"
)

type (
	FailureKind string

	// Error is a classified transport or HTTP failure. Message is the exact
	// text that was emitted as a toast; Status is zero when no response was
	// received.
	Error struct {
		Kind    FailureKind
		Status  int
		Message string
		cause   error
	}

	// Session holds the bearer token fetched once at startup. It is
	// constructed in main and passed to NewClient so the token dependency
	// stays explicit instead of living in package state.
	Session struct {
		mu    sync.RWMutex
		token string
	}

	Config struct {
		BaseURL  string // REST root, e.g. http://localhost:8082/api
		TokenURL string // unauthenticated bootstrap endpoint
		Timeout  time.Duration
	}

	Client struct {
		baseURL  string
		tokenURL string
		http     *http.Client
		session  *Session
		bus      *notify.Bus
		log      *applog.Logger
	}
)

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) HasToken() bool {
	return s.Token() != ""
}

func NewClient(cfg Config, session *Session, bus *notify.Bus, logger *applog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		tokenURL: cfg.TokenURL,
		http:     &http.Client{Timeout: cfg.Timeout},
		session:  session,
		bus:      bus,
		log:      logger.WithComponent(applog.ComponentAPI),
	}
}

// BootstrapToken performs the one-time unauthenticated token fetch and caches
// the result in the session. On failure it emits one "cannot connect" toast
// and returns the error; the caller is expected to continue tokenless.
func (c *Client) BootstrapToken(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tokenURL, nil)
	if err != nil {
		return fmt.Errorf("build token request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.bus.Error(MsgConnect)
		c.log.Warn("Token bootstrap failed, continuing without token",
			applog.FieldOperation, applog.OpBootstrap, applog.FieldError, err.Error())
		return fmt.Errorf("fetch token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.bus.Error(MsgConnect)
		c.log.Warn("Token bootstrap rejected, continuing without token",
			applog.FieldOperation, applog.OpBootstrap, applog.FieldStatusCode, resp.StatusCode)
		return fmt.Errorf("fetch token: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		c.bus.Error(MsgConnect)
		return fmt.Errorf("read token: %w", err)
	}

	c.session.SetToken(strings.TrimSpace(string(body)))
	c.log.Info("Token bootstrap complete", applog.FieldOperation, applog.OpBootstrap)
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs one request through the shared pipeline: JSON body, bearer token
// when the session has one, and classification of every failure. Exactly one
// toast fires per failed call, then the classified error goes to the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(classifyTransport(err), method, path, 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return c.fail(classifyStatus(resp.StatusCode), method, path, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) fail(apiErr *Error, method, path string, status int) error {
	c.bus.Error(apiErr.Message)
	c.log.Warn("Request failed",
		applog.FieldMethod, method,
		applog.FieldPath, path,
		applog.FieldStatusCode, status,
		applog.FieldError, apiErr.Error())
	return apiErr
}

// classifyTransport maps a round-trip error: client-side timeout first, then
// everything else counts as "no response received".
func classifyTransport(err error) *Error {
	var urlErr *url.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &urlErr) && urlErr.Timeout())
	if timedOut {
		return &Error{Kind: FailTimeout, Message: MsgTimeout, cause: err}
	}
	return &Error{Kind: FailConnection, Message: MsgConnect, cause: err}
}

// classifyStatus maps a received non-2xx status to its fixed message.
func classifyStatus(status int) *Error {
	switch status {
	case http.StatusUnauthorized:
		return &Error{Kind: FailUnauthorized, Status: status, Message: MsgUnauthorized}
	case http.StatusForbidden:
		return &Error{Kind: FailForbidden, Status: status, Message: MsgForbidden}
	case http.StatusNotFound:
		return &Error{Kind: FailNotFound, Status: status, Message: MsgNotFound}
	case http.StatusInternalServerError:
		return &Error{Kind: FailServer, Status: status, Message: MsgServerError}
	default:
		return &Error{Kind: FailStatus, Status: status, Message: fmt.Sprintf("API Error (%d)", status)}
	}
}
