package reddit

import "net/http"

// userAgentTransport stamps every outgoing request with a descriptive
// User-Agent. Reddit throttles the default Go user agent aggressively,
// so all calls to its API must go through this.
type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func newUserAgentTransport(agent string, base http.RoundTripper) *userAgentTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &userAgentTransport{agent: agent, base: base}
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(clone)
}
