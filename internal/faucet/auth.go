package faucet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// adminTokenTTL matches the backend's lifetime for bot-issued admin tokens.
const adminTokenTTL = 3 * 24 * time.Hour

// Token is a backend-issued bearer token tied to one Discord caller.
type Token struct {
	AccessToken   string
	WalletAddress string
	Role          string
	ExpiresAt     time.Time
}

// TokenStore caches tokens per caller id. Expiry is checked lazily on read,
// not by a background sweep, so expired entries linger until the caller's own
// next lookup. Fine while token volume stays small and the process short-lived.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]Token
	now    func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]Token),
		now:    time.Now,
	}
}

func (s *TokenStore) Set(callerID string, t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[callerID] = t
}

// Get returns the caller's token, dropping it first if it has expired.
func (s *TokenStore) Get(callerID string) (Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[callerID]
	if !ok {
		return Token{}, false
	}
	if s.now().After(t.ExpiresAt) {
		delete(s.tokens, callerID)
		log.Printf("[INFO] Auth token expired for user %s", callerID)
		return Token{}, false
	}
	return t, true
}

func (s *TokenStore) Remove(callerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, callerID)
}

// AuthHeader returns the Authorization header value for a caller, if a live
// token exists.
func (s *TokenStore) AuthHeader(callerID string) (string, bool) {
	t, ok := s.Get(callerID)
	if !ok {
		return "", false
	}
	return "Bearer " + t.AccessToken, true
}

// Login exchanges an API key for a bearer token and caches it for the caller.
func (c *Client) Login(ctx context.Context, callerID, apiKey string) error {
	payload := map[string]string{
		"apiKey":        apiKey,
		"discordUserId": callerID,
	}
	status, body, err := c.do(ctx, http.MethodPost, "/discord/login", payload, false)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}

	var parsed struct {
		Success     bool   `json:"success"`
		AccessToken string `json:"accessToken"`
	}
	_ = json.Unmarshal(body, &parsed)

	if status != http.StatusOK || !parsed.Success || parsed.AccessToken == "" {
		return fmt.Errorf("login rejected with status %d", status)
	}

	c.tokens.Set(callerID, Token{
		AccessToken:   parsed.AccessToken,
		WalletAddress: "discord_admin",
		Role:          "admin",
		ExpiresAt:     c.now().Add(adminTokenTTL),
	})
	log.Printf("[INFO] Authenticated user %s against the faucet backend", callerID)
	return nil
}
