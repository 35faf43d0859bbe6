package faucet

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreLazyExpiry(t *testing.T) {
	s := NewTokenStore()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.Set("user-1", Token{AccessToken: "tok", ExpiresAt: base.Add(time.Hour)})

	got, ok := s.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, "tok", got.AccessToken)

	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, ok = s.Get("user-1")
	assert.False(t, ok)

	// The expired entry is dropped, not just hidden.
	s.now = func() time.Time { return base }
	_, ok = s.Get("user-1")
	assert.False(t, ok)
}

func TestTokenStoreAuthHeader(t *testing.T) {
	s := NewTokenStore()
	s.Set("user-1", Token{AccessToken: "abc", ExpiresAt: time.Now().Add(time.Hour)})

	header, ok := s.AuthHeader("user-1")
	require.True(t, ok)
	assert.Equal(t, "Bearer abc", header)

	_, ok = s.AuthHeader("missing")
	assert.False(t, ok)
}

func TestTokenStoreRemove(t *testing.T) {
	s := NewTokenStore()
	s.Set("user-1", Token{AccessToken: "abc", ExpiresAt: time.Now().Add(time.Hour)})
	s.Remove("user-1")
	_, ok := s.Get("user-1")
	assert.False(t, ok)
}

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discord/login", r.URL.Path)
		w.Write([]byte(`{"success": true, "accessToken": "issued-token"}`))
	})
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	require.NoError(t, c.Login(context.Background(), "user-1", "api-key"))

	tok, ok := c.Tokens().Get("user-1")
	require.True(t, ok)
	assert.Equal(t, "issued-token", tok.AccessToken)
	assert.Equal(t, "admin", tok.Role)
	assert.Equal(t, base.Add(adminTokenTTL), tok.ExpiresAt)
}

func TestLoginRejected(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false}`))
	})

	err := c.Login(context.Background(), "user-1", "bad-key")
	assert.EqualError(t, err, "login rejected with status 401")

	_, ok := c.Tokens().Get("user-1")
	assert.False(t, ok)
}
