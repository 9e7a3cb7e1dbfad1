package auth

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/smnsjas/go-httpcreds/creds"
)

// Scoped returns a round tripper that authenticates requests matching scope
// with a and forwards every other request to base untouched.
func Scoped(scope creds.Scope, a Authenticator, base http.RoundTripper) http.RoundTripper {
	return &scopedTransport{
		scope:  scope,
		authed: a.Transport(base),
		base:   base,
	}
}

type scopedTransport struct {
	scope  creds.Scope
	authed http.RoundTripper
	base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *scopedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	host, port := HostPort(req.URL)
	if t.scope.Matches(host, port) {
		return t.authed.RoundTrip(req)
	}
	return t.base.RoundTrip(req)
}

// HostPort extracts the target host and port of u,
// using the scheme default when the URL carries no port.
func HostPort(u *url.URL) (string, int) {
	host := u.Hostname()
	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			return host, n
		}
	}
	if u.Scheme == "https" {
		return host, 443
	}
	return host, 80
}
