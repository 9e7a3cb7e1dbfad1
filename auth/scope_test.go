package auth

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smnsjas/go-httpcreds/creds"
)

func TestScoped(t *testing.T) {
	var lastAuth string
	base := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
		lastAuth = req.Header.Get("Authorization")
		return &http.Response{StatusCode: 200, Body: http.NoBody}, nil
	}}

	scope := creds.Scope{Host: "api.example.com", Port: 443}
	rt := Scoped(scope, NewBasicAuth(creds.BasicCredential{Username: "bob", Password: "pw"}), base)

	tests := []struct {
		url      string
		wantAuth bool
	}{
		{"https://api.example.com/v1", true},
		{"https://API.EXAMPLE.COM:443/v1", true},
		{"http://api.example.com:443/v1", true},
		{"http://api.example.com/v1", false},
		{"https://api.example.com:8443/v1", false},
		{"https://other.example.com/v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			lastAuth = ""
			req, err := http.NewRequest(http.MethodGet, tt.url, nil)
			require.NoError(t, err)
			_, err = rt.RoundTrip(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAuth, lastAuth != "", "Authorization = %q", lastAuth)
		})
	}
}

func TestServerTransport(t *testing.T) {
	base := &MockRoundTripper{}

	empty, err := creds.Resolve(creds.Params{})
	require.NoError(t, err)
	rt, err := ServerTransport(empty, base)
	require.NoError(t, err)
	assert.Same(t, base, rt, "no server entry returns base unchanged")

	set, err := creds.Resolve(creds.Params{Username: "u", Password: "p", Host: "h", Port: "80"})
	require.NoError(t, err)
	rt, err = ServerTransport(set, base)
	require.NoError(t, err)
	assert.NotSame(t, base, rt)
}

func TestHostPort(t *testing.T) {
	tests := []struct {
		raw      string
		wantHost string
		wantPort int
	}{
		{"https://example.com/x", "example.com", 443},
		{"http://example.com/x", "example.com", 80},
		{"http://example.com:8080/x", "example.com", 8080},
		{"https://[::1]:8443/", "::1", 8443},
	}

	for _, tt := range tests {
		u, err := url.Parse(tt.raw)
		require.NoError(t, err)
		host, port := HostPort(u)
		assert.Equal(t, tt.wantHost, host, tt.raw)
		assert.Equal(t, tt.wantPort, port, tt.raw)
	}
}
