package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"homezy/i18n"
	"homezy/models"

	"go.uber.org/zap"
)

// LoginPath is the login endpoint relative to the API base URL.
const LoginPath = "/auth/login"

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Authenticator performs a login round trip.
type Authenticator interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
}

// Client talks to the remote login endpoint.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	localizer  Localizer
	logger     *zap.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(d HTTPDoer) ClientOption {
	return func(c *Client) { c.httpClient = d }
}

func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a client for baseURL. The http.Client carries no timeout:
// each click is exactly one attempt that lasts as long as the server takes.
func NewClient(baseURL string, localizer Localizer, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
		localizer:  localizer,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login posts the credentials once. A 2xx answer is returned as is, even when
// its embedded statusCode reports a failure; callers decide what to show.
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	lang := c.localizer.Language()

	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LoginPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", lang.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Login request failed", zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := c.fallback(lang)
		var errResp models.ErrorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && strings.TrimSpace(errResp.Message) != "" {
			msg = errResp.Message
		}
		c.logger.Warn("Login rejected", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, &GenericAuthError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out models.AuthResponse
	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.Error("Malformed login response", zap.Error(err))
		return nil, &GenericAuthError{StatusCode: resp.StatusCode, Message: c.fallback(lang)}
	}
	c.logger.Debug("Login answered", zap.Int("status", resp.StatusCode), zap.Int("statusCode", out.StatusCode))
	return &out, nil
}

func (c *Client) fallback(lang i18n.Locale) string {
	return c.localizer.TFor(lang, i18n.KeyLoginError)
}
