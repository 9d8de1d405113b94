// Package reddit implements the OAuth client and the review fetcher for
// the Reddit API. The auth flow requests a read-only, non-refreshable
// token; the fetcher turns search results into normalized reviews.
package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	authorizeURL = "https://www.reddit.com/api/v1/authorize"
	tokenURL     = "https://www.reddit.com/api/v1/access_token"

	defaultExchangeTimeout = 10 * time.Second

	// Reddit issues temporary tokens with a fixed one-hour lifetime.
	tokenLifetime = time.Hour
)

// Token is the result of a successful authorization-code exchange.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Client performs the three-step OAuth authorization-code flow against
// Reddit. It makes no retries: any failure surfaces immediately.
type Client struct {
	oauth           *oauth2.Config
	http            *http.Client
	exchangeTimeout time.Duration
	nowTime         func() time.Time
}

type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for the token exchange.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithEndpoints points the client at alternate authorize/token URLs.
func WithEndpoints(authURL, tokURL string) ClientOption {
	return func(c *Client) {
		c.oauth.Endpoint = oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		}
	}
}

// WithExchangeTimeout overrides the token-exchange deadline.
func WithExchangeTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.exchangeTimeout = d }
}

// WithNowTime sets the clock (primarily for testing).
func WithNowTime(now func() time.Time) ClientOption {
	return func(c *Client) { c.nowTime = now }
}

func NewClient(clientID, clientSecret, redirectURI, userAgent string, opts ...ClientOption) *Client {
	c := &Client{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"read"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authorizeURL,
				TokenURL: tokenURL,
				// Reddit wants the client credentials as Basic auth.
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		exchangeTimeout: defaultExchangeTimeout,
		nowTime:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Transport: newUserAgentTransport(userAgent, nil)}
	}
	return c
}

// AuthCodeURL builds the authorization URL for the given CSRF state.
// duration=temporary asks for a one-hour, non-refreshable token.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("duration", "temporary"))
}

// ExchangeCode trades an authorization code for an access token. The
// call carries Basic credentials and is bounded by the exchange timeout.
func (c *Client) ExchangeCode(ctx context.Context, code string) (Token, error) {
	if c.oauth.ClientID == "" || c.oauth.ClientSecret == "" {
		return Token{}, ErrMissingCredentials
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	ctx, cancel := context.WithTimeout(ctx, c.exchangeTimeout)
	defer cancel()

	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		switch {
		case errors.As(err, &retrieveErr):
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			if status == http.StatusUnauthorized {
				return Token{}, fmt.Errorf("invalid client credentials: %w", ErrAuthFailed)
			}
			return Token{}, fmt.Errorf("token endpoint returned %d (malformed request?): %w", status, ErrAuthFailed)
		case errors.Is(err, context.DeadlineExceeded):
			return Token{}, fmt.Errorf("token exchange: %w", ErrTimeout)
		default:
			return Token{}, fmt.Errorf("token exchange: %v: %w", err, ErrProtocol)
		}
	}
	if tok.AccessToken == "" {
		return Token{}, fmt.Errorf("token response missing access_token: %w", ErrProtocol)
	}

	return Token{
		AccessToken: tok.AccessToken,
		ExpiresAt:   c.nowTime().Add(tokenLifetime),
	}, nil
}
