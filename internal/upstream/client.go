// Package upstream is the typed client for the REST backend the portal
// fronts. Each resource group gets its own file, mirroring the endpoints the
// portal consumes; everything goes through Client.do, which owns header
// injection, retries and envelope decoding.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"docuport/internal/config"
	"docuport/internal/metrics"
	"docuport/internal/session"
	"docuport/internal/utils/logger"

	"github.com/google/uuid"
)

var log = logger.New("upstream")

// Error is a non-2xx upstream response reduced to its envelope fields.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an upstream 401. The caller is
// expected to clear the session and send the user back to login.
func IsUnauthorized(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.StatusCode == http.StatusUnauthorized
}

// Meta is the pagination block the upstream attaches to list responses.
type Meta struct {
	CurrentPage int `json:"current_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page,omitempty"`
	From        int `json:"from,omitempty"`
	To          int `json:"to,omitempty"`
}

// Links is the pagination link block on list responses.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Envelope is the uniform upstream response wrapper.
type Envelope struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Links      *Links          `json:"links,omitempty"`
	Meta       *Meta           `json:"meta,omitempty"`
}

// Decode unmarshals the envelope's data block into out.
func (e *Envelope) Decode(out interface{}) error {
	if e == nil || len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}

type Client struct {
	baseURL string
	http    *http.Client
	retries int
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		retries: cfg.Retries,
	}
}

// do issues a JSON request against the upstream. The bearer token and locale
// are picked from the context the guard attached; transport failures are
// retried, HTTP errors are not.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Envelope, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return nil, err
		}
		c.setHeaders(ctx, req)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		started := time.Now()
		resp, lastErr = c.http.Do(req)
		if lastErr == nil {
			metrics.UpstreamLatency.Observe(float64(time.Since(started).Milliseconds()))
			break
		}
		log.Warn("upstream %s %s failed (attempt %d): %v", method, path, attempt+1, lastErr)
	}
	if lastErr != nil {
		metrics.UpstreamRequests.WithLabelValues(method, "transport_error").Inc()
		return nil, fmt.Errorf("upstream %s %s: %w", method, path, lastErr)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(method, statusClass(resp.StatusCode)).Inc()
	return decodeResponse(resp)
}

// doMultipart uploads a file with accompanying form fields.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader) (*Envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	part, err := mw.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	c.setHeaders(ctx, req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(http.MethodPost, "transport_error").Inc()
		return nil, fmt.Errorf("upstream upload %s: %w", path, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamLatency.Observe(float64(time.Since(started).Milliseconds()))
	metrics.UpstreamRequests.WithLabelValues(http.MethodPost, statusClass(resp.StatusCode)).Inc()
	return decodeResponse(resp)
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", session.LocaleFromContext(ctx))
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token, ok := session.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func decodeResponse(resp *http.Response) (*Envelope, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	env := &Envelope{}
	if err := json.Unmarshal(raw, env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	if env.StatusCode == 0 {
		env.StatusCode = resp.StatusCode
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		code := env.StatusCode
		if code < http.StatusBadRequest {
			code = resp.StatusCode
		}
		return nil, &Error{StatusCode: code, Message: msg}
	}
	return env, nil
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
