package auth

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/smnsjas/go-httpcreds/creds"
)

// BasicAuth implements HTTP Basic authentication.
type BasicAuth struct {
	cred   creds.BasicCredential
	logger *slog.Logger
}

// NewBasicAuth creates a new Basic authentication handler.
func NewBasicAuth(cred creds.BasicCredential, opts ...Option) *BasicAuth {
	o := buildOptions(opts)
	return &BasicAuth{cred: cred, logger: o.logger}
}

// Name returns the authentication scheme name.
func (a *BasicAuth) Name() string {
	return "Basic"
}

// Transport wraps an http.RoundTripper with Basic authentication.
func (a *BasicAuth) Transport(base http.RoundTripper) http.RoundTripper {
	return &basicTransport{
		base:   base,
		cred:   a.cred,
		logger: a.logger,
	}
}

// basicTransport adds Basic auth header to requests.
type basicTransport struct {
	base     http.RoundTripper
	cred     creds.BasicCredential
	logger   *slog.Logger
	warnOnce sync.Once
}

// RoundTrip implements http.RoundTripper.
func (t *basicTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Credentials are only base64-encoded, so flag cleartext use once.
	if req.URL.Scheme != "https" {
		t.warnOnce.Do(func() {
			t.logger.Warn("Basic authentication over non-HTTPS connection, credentials are not encrypted",
				"host", req.URL.Host)
		})
	}

	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set("Authorization", basicHeaderValue(t.cred.Username, t.cred.Password))

	return t.base.RoundTrip(reqCopy)
}
