package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/http/httpproxy"

	"github.com/smnsjas/go-httpcreds/auth"
	"github.com/smnsjas/go-httpcreds/creds"
)

// ErrUnauthorized is returned when the server responds with 401 Unauthorized.
// Use errors.Is(err, ErrUnauthorized) to check for authentication failures.
var ErrUnauthorized = errors.New("transport: authentication failed (401 Unauthorized)")

// ErrProxyAuthRequired is returned when the proxy responds with 407.
var ErrProxyAuthRequired = errors.New("transport: proxy authentication failed (407 Proxy Authentication Required)")

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// maxErrorPreview caps the response body quoted in error messages.
	maxErrorPreview = 3000
)

// HTTPTransport performs authenticated HTTP requests.
type HTTPTransport struct {
	client   *retryablehttp.Client
	base     *http.Transport
	set      *creds.Set
	security *securityLogger
}

// HTTPTransportOption configures an HTTPTransport.
type HTTPTransportOption func(*config)

type config struct {
	timeout      time.Duration
	insecure     bool
	tlsConfig    *tls.Config
	set          *creds.Set
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	proxyFromEnv bool
	logger       *slog.Logger
}

// NewHTTPTransport creates a new HTTP transport with the given options.
func NewHTTPTransport(opts ...HTTPTransportOption) (*HTTPTransport, error) {
	cfg := config{
		timeout:      DefaultTimeout,
		retryWaitMin: time.Second,
		retryWaitMax: 30 * time.Second,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	base := cleanhttp.DefaultPooledTransport()
	// NTLM authenticates the connection, so keep-alives must stay on.
	base.DisableKeepAlives = false
	base.MaxConnsPerHost = 10
	base.Proxy = nil
	base.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	if cfg.tlsConfig != nil {
		tc := cfg.tlsConfig.Clone()
		if tc.MinVersion < tls.VersionTLS12 {
			tc.MinVersion = tls.VersionTLS12
		}
		base.TLSClientConfig = tc
	}
	if cfg.insecure {
		cfg.logger.Warn("TLS certificate verification disabled, use only for testing")
		base.TLSClientConfig.InsecureSkipVerify = true
	}

	var rt http.RoundTripper = base

	if e, ok := cfg.set.Proxy(); ok {
		proxyURL := &url.URL{Scheme: "http", Host: e.Scope.String()}
		base.Proxy = http.ProxyURL(proxyURL)
		base.ProxyConnectHeader = http.Header{
			"Proxy-Authorization": []string{auth.ProxyAuthorization(e.Credential)},
		}
		rt = auth.NewProxyBasicAuth(creds.BasicCredential{
			Username: e.Credential.UserName(),
			Password: e.Credential.Secret(),
		}).Transport(rt)
	} else if cfg.proxyFromEnv {
		proxyFunc := httpproxy.FromEnvironment().ProxyFunc()
		base.Proxy = func(req *http.Request) (*url.URL, error) {
			return proxyFunc(req.URL)
		}
	}

	rt, err := auth.ServerTransport(cfg.set, rt, auth.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	rt = &requestIDTransport{base: rt, logger: cfg.logger}

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{
		Timeout:   cfg.timeout,
		Transport: rt,
	}
	client.RetryMax = cfg.retryMax
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.Logger = cfg.logger
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &HTTPTransport{
		client:   client,
		base:     base,
		set:      cfg.set,
		security: newSecurityLogger(cfg.logger),
	}, nil
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) HTTPTransportOption {
	return func(c *config) {
		c.timeout = d
	}
}

// WithInsecureSkipVerify configures TLS to skip certificate verification.
// WARNING: Only use this for testing. Never use in production.
func WithInsecureSkipVerify(skip bool) HTTPTransportOption {
	return func(c *config) {
		c.insecure = skip
	}
}

// WithTLSConfig sets a custom TLS configuration.
// NOTE: MinVersion is enforced to be at least TLS 1.2.
func WithTLSConfig(cfg *tls.Config) HTTPTransportOption {
	return func(c *config) {
		c.tlsConfig = cfg
	}
}

// WithCredentials authenticates requests with the entries of set.
func WithCredentials(set *creds.Set) HTTPTransportOption {
	return func(c *config) {
		c.set = set
	}
}

// WithRetryMax sets how many times a failed request is retried. Default 0.
func WithRetryMax(n int) HTTPTransportOption {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithRetryWait bounds the backoff between retries.
func WithRetryWait(minWait, maxWait time.Duration) HTTPTransportOption {
	return func(c *config) {
		c.retryWaitMin = minWait
		c.retryWaitMax = maxWait
	}
}

// WithProxyFromEnvironment uses HTTP_PROXY, HTTPS_PROXY and NO_PROXY when the
// credential set has no proxy entry.
func WithProxyFromEnvironment(enabled bool) HTTPTransportOption {
	return func(c *config) {
		c.proxyFromEnv = enabled
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) HTTPTransportOption {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Get sends a GET request and returns the response body.
func (t *HTTPTransport) Get(ctx context.Context, url string) ([]byte, error) {
	return t.Do(ctx, http.MethodGet, url, nil)
}

// Do sends a request and returns the response body.
// A nil body sends no body.
func (t *HTTPTransport) Do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var rawBody interface{}
	if body != nil {
		rawBody = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, rawBody)
	if err != nil {
		return nil, fmt.Errorf("transport: failed to create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transport: failed to read response: %w", err)
	}

	t.recordAuthOutcome(req.URL, resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusProxyAuthRequired:
		return nil, ErrProxyAuthRequired
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("transport: access denied (403 Forbidden)")
	case resp.StatusCode >= 400:
		bodyPreview := string(respBody)
		if len(bodyPreview) > maxErrorPreview {
			bodyPreview = bodyPreview[:maxErrorPreview] + "..."
		}
		return nil, fmt.Errorf("transport: HTTP %d: %s", resp.StatusCode, bodyPreview)
	}

	return respBody, nil
}

// recordAuthOutcome logs a SecurityEvent when credentials took part in the exchange.
func (t *HTTPTransport) recordAuthOutcome(u *url.URL, status int) {
	if status == http.StatusProxyAuthRequired {
		if e, ok := t.set.Proxy(); ok {
			t.security.log(EventProxyAuthentication, OutcomeDenied,
				e.Credential.UserName(), e.Credential.Scheme(), e.Scope.String(), status)
		}
		return
	}

	e, ok := t.set.Server()
	if !ok {
		return
	}
	host, port := auth.HostPort(u)
	if !e.Scope.Matches(host, port) {
		return
	}

	outcome := OutcomeSuccess
	if status == http.StatusUnauthorized {
		outcome = OutcomeFailure
	} else if status == http.StatusForbidden {
		outcome = OutcomeDenied
	}
	t.security.log(EventAuthentication, outcome,
		e.Credential.UserName(), e.Credential.Scheme(), e.Scope.String(), status)
}

// Client returns the underlying authenticated HTTP client, without retries.
func (t *HTTPTransport) Client() *http.Client {
	return t.client.HTTPClient
}

// CloseIdleConnections closes pooled connections.
func (t *HTTPTransport) CloseIdleConnections() {
	t.base.CloseIdleConnections()
}
