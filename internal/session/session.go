// Package session holds the auth-flow session: the CSRF state during
// the redirect dance and the access token after it. Stores are
// pluggable so the cookie-backed default can be swapped for a
// server-side one without touching the handlers.
package session

import (
	"context"
	"net/http"
	"time"
)

// Session is the state carried across one auth flow. State is only set
// while the flow is pending; AccessToken only once it completed.
type Session struct {
	State       string    `json:"state,omitempty"`
	AccessToken string    `json:"access_token,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session's token lifetime has passed.
// Expiry is detected lazily: callers check on every load and Clear the
// session when this returns true. There is no refresh path.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store abstracts where auth-flow state and tokens live. The cookie
// store keeps everything client-side; the Redis store keeps an opaque
// id in the cookie and the values server-side.
type Store interface {
	// SaveState begins a pending auth flow with the given CSRF state.
	SaveState(ctx context.Context, w http.ResponseWriter, state string) error

	// LoadState returns the pending state, or "" when none is stored.
	LoadState(ctx context.Context, r *http.Request) (string, error)

	// SaveToken promotes the pending flow to an authenticated session,
	// consuming the stored state.
	SaveToken(ctx context.Context, w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) error

	// Load returns the current session, or nil when none exists.
	Load(ctx context.Context, r *http.Request) (*Session, error)

	// Clear destroys the session and all of its cookies.
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
