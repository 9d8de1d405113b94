package reddit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/icycoldveins/product-review-aggregator/internal/reddit"
)

const (
	testClientID     = "test-client-id"
	testClientSecret = "test-client-secret"
	testRedirectURI  = "http://localhost:3000/api/auth/reddit/callback"
	testUserAgent    = "web:product-review-aggregator:test"
)

func newTestClient(t *testing.T, tokenEndpoint string, opts ...reddit.ClientOption) *reddit.Client {
	t.Helper()
	opts = append([]reddit.ClientOption{
		reddit.WithEndpoints("http://example.invalid/authorize", tokenEndpoint),
	}, opts...)
	return reddit.NewClient(testClientID, testClientSecret, testRedirectURI, testUserAgent, opts...)
}

func TestAuthCodeURL(t *testing.T) {
	c := reddit.NewClient(testClientID, testClientSecret, testRedirectURI, testUserAgent)

	raw := c.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	require.Equal(t, "www.reddit.com", u.Host)
	require.Equal(t, "/api/v1/authorize", u.Path)

	q := u.Query()
	require.Equal(t, testClientID, q.Get("client_id"))
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "state-123", q.Get("state"))
	require.Equal(t, testRedirectURI, q.Get("redirect_uri"))
	require.Equal(t, "temporary", q.Get("duration"))
	require.Equal(t, "read", q.Get("scope"))
}

func TestExchangeCode(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("successful exchange", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)

			id, secret, ok := r.BasicAuth()
			require.True(t, ok, "token exchange must use Basic auth")
			require.Equal(t, testClientID, id)
			require.Equal(t, testClientSecret, secret)

			require.NoError(t, r.ParseForm())
			require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			require.Equal(t, "the-code", r.PostForm.Get("code"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "the-token",
				"token_type":   "bearer",
				"expires_in":   3600,
				"scope":        "read",
			})
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL, reddit.WithNowTime(func() time.Time { return now }))

		tok, err := c.ExchangeCode(context.Background(), "the-code")
		require.NoError(t, err)
		require.Equal(t, "the-token", tok.AccessToken)
		require.Equal(t, now.Add(time.Hour), tok.ExpiresAt)
	})

	t.Run("missing credentials", func(t *testing.T) {
		c := reddit.NewClient("", "", testRedirectURI, testUserAgent)
		_, err := c.ExchangeCode(context.Background(), "the-code")
		require.ErrorIs(t, err, reddit.ErrMissingCredentials)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client"}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		_, err := c.ExchangeCode(context.Background(), "the-code")
		require.ErrorIs(t, err, reddit.ErrAuthFailed)
		require.Contains(t, err.Error(), "invalid client credentials")
	})

	t.Run("malformed request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		_, err := c.ExchangeCode(context.Background(), "the-code")
		require.ErrorIs(t, err, reddit.ErrAuthFailed)
		require.NotContains(t, err.Error(), "invalid client credentials")
	})

	t.Run("response without access token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token_type":"bearer","expires_in":3600}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL)
		_, err := c.ExchangeCode(context.Background(), "the-code")
		require.ErrorIs(t, err, reddit.ErrProtocol)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL, reddit.WithExchangeTimeout(20*time.Millisecond))
		_, err := c.ExchangeCode(context.Background(), "the-code")
		require.ErrorIs(t, err, reddit.ErrTimeout)
	})
}
