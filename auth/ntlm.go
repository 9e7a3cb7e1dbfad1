package auth

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/Azure/go-ntlmssp"

	"github.com/smnsjas/go-httpcreds/creds"
)

// NTLMAuth implements NTLM authentication.
type NTLMAuth struct {
	cred   creds.DomainCredential
	logger *slog.Logger
}

// NewNTLMAuth creates a new NTLM authentication handler.
func NewNTLMAuth(cred creds.DomainCredential, opts ...Option) *NTLMAuth {
	o := buildOptions(opts)
	return &NTLMAuth{cred: cred, logger: o.logger}
}

// Name returns the authentication scheme name.
func (a *NTLMAuth) Name() string {
	return "NTLM"
}

// Transport wraps an http.RoundTripper with NTLM authentication.
// Uses github.com/Azure/go-ntlmssp for the NTLM handshake.
func (a *NTLMAuth) Transport(base http.RoundTripper) http.RoundTripper {
	return &credentialsRoundTripper{
		cred:   a.cred,
		logger: a.logger,
		base:   ntlmssp.Negotiator{RoundTripper: base},
	}
}

// credentialsRoundTripper hands the credential to ntlmssp.Negotiator, which
// reads it from the Basic auth fields of the request as DOMAIN\user.
type credentialsRoundTripper struct {
	cred     creds.DomainCredential
	logger   *slog.Logger
	base     http.RoundTripper
	warnOnce sync.Once
}

// RoundTrip implements http.RoundTripper.
func (rt *credentialsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// The NTLMv2 response can be relayed or cracked offline when seen in clear.
	if req.URL.Scheme != "https" {
		rt.warnOnce.Do(func() {
			rt.logger.Warn("NTLM authentication over non-HTTPS connection, handshake is exposed to relay",
				"host", req.URL.Host)
		})
	}

	reqCopy := req.Clone(req.Context())
	reqCopy.SetBasicAuth(rt.cred.UserName(), rt.cred.Password)
	return rt.base.RoundTrip(reqCopy)
}
