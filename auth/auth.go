package auth

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/smnsjas/go-httpcreds/creds"
)

// Authenticator defines the interface for authentication handlers.
type Authenticator interface {
	// Transport wraps an http.RoundTripper with authentication.
	Transport(base http.RoundTripper) http.RoundTripper

	// Name returns the authentication scheme name.
	Name() string
}

// Option configures an authenticator.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for warnings. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ForCredential returns the authenticator matching the credential's type.
// DomainCredential maps to NTLM, BasicCredential to Basic.
func ForCredential(c creds.Credential, opts ...Option) (Authenticator, error) {
	switch v := c.(type) {
	case creds.DomainCredential:
		return NewNTLMAuth(v, opts...), nil
	case *creds.DomainCredential:
		return NewNTLMAuth(*v, opts...), nil
	case creds.BasicCredential:
		return NewBasicAuth(v, opts...), nil
	case *creds.BasicCredential:
		return NewBasicAuth(*v, opts...), nil
	default:
		return nil, fmt.Errorf("auth: unsupported credential type %T", c)
	}
}

// ServerTransport wraps base so that requests to the server scope of set are
// authenticated. A set without a server entry returns base unchanged.
func ServerTransport(set *creds.Set, base http.RoundTripper, opts ...Option) (http.RoundTripper, error) {
	e, ok := set.Server()
	if !ok {
		return base, nil
	}
	a, err := ForCredential(e.Credential, opts...)
	if err != nil {
		return nil, err
	}
	return Scoped(e.Scope, a, base), nil
}

// basicHeaderValue returns the value of a Basic Authorization header.
func basicHeaderValue(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// ProxyAuthorization returns the Proxy-Authorization header value for c.
func ProxyAuthorization(c creds.Credential) string {
	return basicHeaderValue(c.UserName(), c.Secret())
}
