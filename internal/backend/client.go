// Package backend talks to the dealership REST API. Every call takes an
// explicit Session; nothing is read from ambient storage.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	pathLogin    = "/auth/login"
	pathAccounts = "/cuentas"
	pathEntries  = "/asientos-contables"

	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// ErrUnauthorized is returned when the backend rejects the session.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Session carries the bearer credentials for one user.
type Session struct {
	Token     string `yaml:"token"`
	TokenType string `yaml:"token_type"`
}

func (s Session) header() string {
	typ := s.TokenType
	if typ == "" {
		typ = "Bearer"
	}
	return typ + " " + s.Token
}

// Client is a thin JSON client for the backend.
type Client struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout. A client passed through
// WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a client for the API rooted at baseURL
// (e.g. "https://erp.example.com/api").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		validate: validator.New(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.http.Timeout != c.timeout {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return Session{}, fmt.Errorf("encoding login request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, pathLogin, nil, body)
	if err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}

	data, err := unwrap(raw)
	if err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Session{}, fmt.Errorf("decoding login response: %w", err)
	}
	if resp.AccessToken == "" {
		return Session{}, errors.New("login: backend returned no access token")
	}

	typ := resp.TokenType
	if typ == "" {
		typ = "Bearer"
	}
	return Session{Token: resp.AccessToken, TokenType: typ}, nil
}

func (c *Client) get(ctx context.Context, s *Session, path string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, s, nil)
	if err != nil {
		return err
	}
	data, err := unwrap(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, s *Session, body []byte) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		req.Header.Set("Authorization", s.header())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}
	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	return raw, nil
}

// errorMessage extracts {"message": ...} from an error body, falling back to
// the raw text.
func errorMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &env) == nil && env.Message != "" {
		return env.Message
	}
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	return strings.TrimSpace(string(raw))
}
