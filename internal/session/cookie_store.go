package session

import (
	"context"
	"net/http"
	"time"
)

// CookieStore keeps the whole session in client cookies: the server is
// stateless between requests. The access token travels only inside an
// HttpOnly cookie and is never exposed in a response body.
type CookieStore struct {
	opts CookieOptions
}

func NewCookieStore(opts CookieOptions) *CookieStore {
	return &CookieStore{opts: opts}
}

func (s *CookieStore) SaveState(_ context.Context, w http.ResponseWriter, state string) error {
	setCookie(w, StateCookieName, state, stateTTL, true, s.opts)
	return nil
}

func (s *CookieStore) LoadState(_ context.Context, r *http.Request) (string, error) {
	return cookieValue(r, StateCookieName), nil
}

func (s *CookieStore) SaveToken(_ context.Context, w http.ResponseWriter, _ *http.Request, token string, expiresAt time.Time) error {
	// Promoting the flow consumes the state cookie.
	clearCookie(w, StateCookieName, true, s.opts)
	setCookie(w, TokenCookieName, token, tokenTTL, true, s.opts)
	setCookie(w, ExpiryCookieName, expiresAt.UTC().Format(time.RFC3339), tokenTTL, false, s.opts)
	return nil
}

func (s *CookieStore) Load(_ context.Context, r *http.Request) (*Session, error) {
	token := cookieValue(r, TokenCookieName)
	if token == "" {
		return nil, nil
	}

	sess := &Session{AccessToken: token}
	if raw := cookieValue(r, ExpiryCookieName); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			sess.ExpiresAt = t
		}
	}
	return sess, nil
}

func (s *CookieStore) Clear(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
	clearCookie(w, StateCookieName, true, s.opts)
	clearCookie(w, TokenCookieName, true, s.opts)
	clearCookie(w, ExpiryCookieName, false, s.opts)
	return nil
}
