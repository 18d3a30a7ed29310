package indiabills

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// TokenProvider supplies the bearer token for the current session, or
// an empty string when no session exists. The token is re-read on every
// request so a re-login takes effect immediately.
type TokenProvider interface {
	Token() string
}

// Config configures the upstream API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenProvider
}

// Client is the HTTP client for the IndiaBills backend REST API. Every
// endpoint gets one method; all paths are prefixed with /v1 and carry
// the session bearer token when one is available.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenProvider
	debug      bool
}

// NewClient constructs a new upstream client with sane defaults.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL + "/v1",
		tokens:     cfg.Tokens,
		debug:      os.Getenv("ENV") == "development",
	}
}

// envelope is the upstream wire shape. Data stays raw until the typed
// decode in each endpoint method.
type envelope struct {
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// getJSON performs a GET and decodes the envelope data into a T.
// Idempotent reads get a small bounded retry with backoff; the original
// client had none, which made every transient blip a hard failure.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) Result[T] {
	const attempts = 3
	var last Result[T]
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(time.Duration(i) * 500 * time.Millisecond):
			case <-ctx.Done():
				return Err[T](500, ctx.Err().Error())
			}
		}
		last = doJSON[T](ctx, c, http.MethodGet, path, query, nil)
		if last.IsOk() || last.Status() < 500 {
			return last
		}
	}
	return last
}

// postJSON performs a single-shot POST. Mutating calls are never
// retried here; idempotency is the caller's problem.
func postJSON[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return doJSON[T](ctx, c, http.MethodPost, path, nil, body)
}

func putJSON[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return doJSON[T](ctx, c, http.MethodPut, path, nil, body)
}

func deleteJSON[T any](ctx context.Context, c *Client, path string) Result[T] {
	return doJSON[T](ctx, c, http.MethodDelete, path, nil, nil)
}

func doJSON[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) Result[T] {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Err[T](500, fmt.Sprintf("failed to marshal request: %v", err))
		}
		reader = bytes.NewReader(payload)
		if c.debug {
			log.Debug().Str("method", method).Str("path", path).RawJSON("request", payload).
				Msg("[UPSTREAM] Outgoing request")
		}
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return Err[T](500, fmt.Sprintf("failed to create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("[UPSTREAM] Request failed")
		return Err[T](500, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Err[T](500, fmt.Sprintf("failed to read response: %v", err))
	}

	if c.debug {
		log.Debug().Str("path", path).Int("status_code", resp.StatusCode).RawJSON("response", respBody).
			Msg("[UPSTREAM] Incoming response")
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return Err[T](resp.StatusCode, fmt.Sprintf("failed to decode response: %v", err))
	}

	status := env.Status
	if status == 0 {
		status = resp.StatusCode
	}
	if status >= 400 {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		log.Warn().Int("status", status).Str("path", path).Str("error", msg).Msg("[UPSTREAM] Error response")
		return Err[T](status, msg)
	}

	var data T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return Err[T](500, fmt.Sprintf("failed to decode data: %v", err))
		}
	}
	return Ok(data)
}
