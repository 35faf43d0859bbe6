// Package faucet is a typed client for the remote token-dispensing service.
// All calls are bounded by a fixed timeout and are never retried: the backend
// owns cooldown and idempotency policy, and a blind retry could double-submit
// a token request.
package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"faucet-bot/internal/config"
)

var (
	// ErrSecretMissing is returned when an admin call is made without
	// DISCORD_BOT_SECRET configured. Checked lazily at call time: deployments
	// that only use the public commands never need the secret.
	ErrSecretMissing = errors.New("DISCORD_BOT_SECRET is not configured")

	// ErrEmptyUpdate is returned by UpdateConfig before any network I/O when
	// no fields were set.
	ErrEmptyUpdate = errors.New("no configuration fields provided")
)

const (
	requestTimeout = 10 * time.Second
	userAgent      = "Discord-Bot/1.0"
	secretHeader   = "X-Discord-Bot-Secret"
)

type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter

	// secret is read on every authenticated call so the shared secret can be
	// rotated without a restart.
	secret func() string

	now    func() time.Time
	tokens *TokenStore
}

func NewClient(baseURL string) *Client {
	c := &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(10), 10),
		secret:  func() string { return config.Get("DISCORD_BOT_SECRET") },
		now:     time.Now,
		tokens:  NewTokenStore(),
	}
	// The store shares the client's clock so both observe the same time source.
	c.tokens.now = func() time.Time { return c.now() }
	return c
}

// Tokens exposes the per-caller auth token cache.
func (c *Client) Tokens() *TokenStore { return c.tokens }

// RequestTokens submits a token request for a wallet. Every failure class is
// folded into the Result: HTTP 429 becomes ResultRateLimited with an absolute
// retry time, anything else becomes ResultError with a message the caller can
// show as-is.
func (c *Client) RequestTokens(ctx context.Context, walletAddress, callerID string) Result {
	log.Printf("[INFO] Requesting tokens for wallet %s (user %s)", walletAddress, callerID)

	payload := map[string]string{
		"walletAddress": walletAddress,
		"userId":        callerID,
	}
	status, body, err := c.do(ctx, http.MethodPost, "/faucet", payload, false)
	if err != nil {
		return transportResult(err)
	}

	switch {
	case status == http.StatusTooManyRequests:
		return c.rateLimitedResult(body)
	case status < 200 || status >= 300:
		msg := remoteErrorMessage(body)
		if msg == "" {
			msg = fmt.Sprintf("Request failed with status %d", status)
		}
		return Result{Kind: ResultError, Message: msg}
	}

	var parsed struct {
		Message string `json:"message"`
		Tx      string `json:"tx"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("[WARN] Failed to decode faucet response: %v", err)
	}
	return Result{Kind: ResultSuccess, Message: parsed.Message, TxHash: parsed.Tx}
}

// Analytics fetches the backend's request analytics. Requires the shared
// secret; a missing secret fails with ErrSecretMissing before any network I/O.
func (c *Client) Analytics(ctx context.Context) (*AnalyticsSnapshot, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/admin/analytics", nil, true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, remoteError("analytics", status, body)
	}

	var snap AnalyticsSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode analytics response: %w", err)
	}
	return &snap, nil
}

// Config fetches the backend's current faucet configuration.
func (c *Client) Config(ctx context.Context) (*ConfigSnapshot, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/admin/config", nil, true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, remoteError("config", status, body)
	}

	var parsed struct {
		Success bool           `json:"success"`
		Config  ConfigSnapshot `json:"config"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode config response: %w", err)
	}
	return &parsed.Config, nil
}

// UpdateConfig submits a partial configuration update. An empty update is
// rejected client-side with ErrEmptyUpdate so callers can short-circuit
// without a network round trip.
func (c *Client) UpdateConfig(ctx context.Context, update ConfigUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	status, body, err := c.do(ctx, http.MethodPost, "/admin/config/update", update, true)
	if err != nil {
		return err
	}

	var parsed struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &parsed)

	if status != http.StatusOK || !parsed.Success {
		if parsed.Error != "" {
			return fmt.Errorf("config update rejected: %s", parsed.Error)
		}
		return fmt.Errorf("config update failed with status %d", status)
	}
	return nil
}

// HealthCheck reports whether the backend answers its root endpoint with 200.
// Any failure, transport errors included, yields false.
func (c *Client) HealthCheck(ctx context.Context) bool {
	status, _, err := c.do(ctx, http.MethodGet, "/", nil, false)
	return err == nil && status == http.StatusOK
}

func (c *Client) do(ctx context.Context, method, path string, payload any, authed bool) (int, []byte, error) {
	var secret string
	if authed {
		secret = c.secret()
		if secret == "" {
			return 0, nil, ErrSecretMissing
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set(secretHeader, secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// rateLimitedResult turns a 429 body into ResultRateLimited. An explicit
// retryAt wins over retryAfter; with neither, the retry time degrades to now.
func (c *Client) rateLimitedResult(body []byte) Result {
	var parsed struct {
		RetryAfter json.Number     `json:"retryAfter"`
		RetryAt    json.RawMessage `json:"retryAt"`
		Error      string          `json:"error"`
	}
	_ = json.Unmarshal(body, &parsed)

	retryAt := parseRetryAt(parsed.RetryAt)
	if retryAt.IsZero() {
		if secs, err := parsed.RetryAfter.Int64(); err == nil && secs > 0 {
			retryAt = c.now().Add(time.Duration(secs) * time.Second)
		}
	}
	if retryAt.IsZero() {
		retryAt = c.now()
	}

	msg := parsed.Error
	if msg == "" {
		msg = "Rate limit exceeded. Please try again later."
	}
	return Result{Kind: ResultRateLimited, Message: msg, RetryAt: retryAt}
}

// parseRetryAt accepts either an RFC3339 string or an epoch-milliseconds
// number, the two shapes the backend has been seen to emit.
func parseRetryAt(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
		return time.Time{}
	}
	var millis int64
	if err := json.Unmarshal(raw, &millis); err == nil && millis > 0 {
		return time.UnixMilli(millis)
	}
	return time.Time{}
}

func transportResult(err error) Result {
	log.Printf("[ERR] Faucet request transport failure: %v", err)
	switch {
	case isTimeout(err):
		return Result{Kind: ResultError, Message: "Request timeout. Please try again later."}
	case isUnreachable(err):
		return Result{Kind: ResultError, Message: "Server is under maintenance. Please try again later."}
	default:
		return Result{Kind: ResultError, Message: "An unexpected error occurred. Please try again later."}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}

func remoteErrorMessage(body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &parsed)
	return parsed.Error
}

func remoteError(what string, status int, body []byte) error {
	if msg := remoteErrorMessage(body); msg != "" {
		return fmt.Errorf("%s request failed with status %d: %s", what, status, msg)
	}
	return fmt.Errorf("%s request failed with status %d", what, status)
}
