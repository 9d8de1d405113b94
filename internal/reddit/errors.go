package reddit

import "errors"

// Sentinel errors for the Reddit auth and search flows. Handlers map
// these to HTTP status codes with errors.Is; everything else is a 500.
var (
	// ErrMissingCredentials means the client id or secret is unset.
	// Not retryable; a deployment problem, not a user one.
	ErrMissingCredentials = errors.New("reddit: missing client credentials")

	// ErrAuthRequired means no access token was supplied.
	ErrAuthRequired = errors.New("reddit: authentication required")

	// ErrAuthFailed means the token endpoint rejected the exchange.
	ErrAuthFailed = errors.New("reddit: authentication failed")

	// ErrAuthExpired means the search API reported 401/403 for a token
	// that previously worked. The session must be cleared.
	ErrAuthExpired = errors.New("reddit: authentication expired")

	// ErrTimeout means an external call exceeded its deadline.
	ErrTimeout = errors.New("reddit: request timed out")

	// ErrProtocol means Reddit answered with an unexpected shape.
	ErrProtocol = errors.New("reddit: unexpected response")
)
