package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/icycoldveins/product-review-aggregator/internal/session"
)

// unexported, collision-proof context key
type accessTokenContextKeyType struct{}

var accessTokenKey = accessTokenContextKeyType{}

// AccessTokenFromContext extracts the Reddit access token attached by
// RequireSession.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	return token, ok
}

// SessionMiddleware guards routes that need an authenticated Reddit
// session. Expiry is enforced lazily here: an expired session is
// cleared in the same response that rejects the request.
type SessionMiddleware struct {
	store   session.Store
	nowTime func() time.Time
}

type SessionOption func(*SessionMiddleware)

// WithNowTime sets the clock (primarily for testing).
func WithNowTime(now func() time.Time) SessionOption {
	return func(m *SessionMiddleware) { m.nowTime = now }
}

func NewSessionMiddleware(store session.Store, opts ...SessionOption) *SessionMiddleware {
	m := &SessionMiddleware{store: store, nowTime: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Load(r.Context(), r)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "Failed to check authentication status", "")
			return
		}
		if sess == nil || sess.AccessToken == "" {
			writeJSONError(w, http.StatusUnauthorized, "Reddit authentication required", "no_auth_token")
			return
		}
		if sess.Expired(m.nowTime()) {
			_ = m.store.Clear(r.Context(), w, r)
			writeJSONError(w, http.StatusUnauthorized, "Reddit authentication required or expired", "token_expired")
			return
		}

		ctx := context.WithValue(r.Context(), accessTokenKey, sess.AccessToken)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg, reason string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	body := map[string]string{"error": msg}
	if reason != "" {
		body["reason"] = reason
	}
	_ = json.NewEncoder(w).Encode(body)
}
