package session

import (
	"net/http"
	"time"
)

// Cookie names. ExpiryCookieName is deliberately not HttpOnly so the
// browser UI can read the expiry timestamp and prompt re-auth.
const (
	StateCookieName  = "reddit_auth_state"
	TokenCookieName  = "reddit_auth_token"
	ExpiryCookieName = "reddit_auth_expires"
	IDCookieName     = "reddit_session"
)

const (
	stateTTL = 10 * time.Minute
	tokenTTL = time.Hour
)

// CookieOptions defines how auth cookies are issued.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
}

func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

func setCookie(w http.ResponseWriter, name, value string, maxAge time.Duration, httpOnly bool, opts CookieOptions) {
	opts = opts.normalize()
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     opts.Path,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: httpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

func clearCookie(w http.ResponseWriter, name string, httpOnly bool, opts CookieOptions) {
	opts = opts.normalize()
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: httpOnly,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// cookieValue reads a cookie, returning "" when it is absent.
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
