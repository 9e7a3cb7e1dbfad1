package auth

import (
	"net/http"

	"github.com/smnsjas/go-httpcreds/creds"
)

// ProxyBasicAuth sets Proxy-Authorization on requests forwarded through an HTTP proxy.
//
// Only plain-HTTP requests carry the header; HTTPS requests are tunnelled with
// CONNECT, whose headers come from http.Transport.ProxyConnectHeader.
type ProxyBasicAuth struct {
	cred creds.BasicCredential
}

// NewProxyBasicAuth creates a proxy authentication handler.
func NewProxyBasicAuth(cred creds.BasicCredential) *ProxyBasicAuth {
	return &ProxyBasicAuth{cred: cred}
}

// Name returns the authentication scheme name.
func (a *ProxyBasicAuth) Name() string {
	return "ProxyBasic"
}

// Transport wraps an http.RoundTripper with proxy authentication.
func (a *ProxyBasicAuth) Transport(base http.RoundTripper) http.RoundTripper {
	return &proxyTransport{
		base:  base,
		value: ProxyAuthorization(a.cred),
	}
}

type proxyTransport struct {
	base  http.RoundTripper
	value string
}

// RoundTrip implements http.RoundTripper.
func (t *proxyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "http" {
		return t.base.RoundTrip(req)
	}
	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set("Proxy-Authorization", t.value)
	return t.base.RoundTrip(reqCopy)
}
