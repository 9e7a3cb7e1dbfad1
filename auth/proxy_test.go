package auth

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smnsjas/go-httpcreds/creds"
)

func TestProxyBasicAuth_Transport(t *testing.T) {
	var got string
	base := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
		got = req.Header.Get("Proxy-Authorization")
		return &http.Response{StatusCode: 200, Body: http.NoBody}, nil
	}}

	a := NewProxyBasicAuth(creds.BasicCredential{Username: "proxyuser", Password: "proxypw"})
	assert.Equal(t, "ProxyBasic", a.Name())
	rt := a.Transport(base)

	req, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("proxyuser:proxypw"))
	assert.Equal(t, want, got)
	assert.Empty(t, req.Header.Get("Proxy-Authorization"), "original request must not be mutated")

	got = ""
	req, err = http.NewRequest(http.MethodGet, "https://example.com/", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Empty(t, got, "https requests rely on the CONNECT header")
}

func TestProxyAuthorization(t *testing.T) {
	v := ProxyAuthorization(creds.BasicCredential{Username: "a", Password: "b"})
	assert.Equal(t, "Basic YTpi", v)
}
