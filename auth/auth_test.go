package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smnsjas/go-httpcreds/creds"
)

// MockRoundTripper captures requests and returns canned responses.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if m.RoundTripFunc != nil {
		return m.RoundTripFunc(req)
	}
	return &http.Response{StatusCode: 200, Body: http.NoBody}, nil
}

// TestBasicAuth_Name verifies the auth scheme name.
func TestBasicAuth_Name(t *testing.T) {
	a := NewBasicAuth(creds.BasicCredential{})
	if a.Name() != "Basic" {
		t.Errorf("Name() = %q, want %q", a.Name(), "Basic")
	}
}

// TestBasicAuth_Transport verifies the transport wrapper.
func TestBasicAuth_Transport(t *testing.T) {
	a := NewBasicAuth(creds.BasicCredential{Username: "testuser", Password: "testpass"})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Basic ") {
			t.Errorf("expected Basic auth, got: %q", authHeader)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, "Basic "))
		if err != nil {
			t.Errorf("failed to decode auth header: %v", err)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if string(decoded) != "testuser:testpass" {
			t.Errorf("decoded credentials = %q, want %q", string(decoded), "testuser:testpass")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: a.Transport(http.DefaultTransport)}

	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

// TestBasicAuth_EmptyPassword verifies an empty password is sent as-is.
func TestBasicAuth_EmptyPassword(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	base := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
		gotUser, gotPass, gotOK = req.BasicAuth()
		return &http.Response{StatusCode: 200, Body: http.NoBody}, nil
	}}

	rt := NewBasicAuth(creds.BasicCredential{Username: "anon"}).Transport(base)
	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip failed: %v", err)
	}

	if !gotOK || gotUser != "anon" || gotPass != "" {
		t.Errorf("BasicAuth() = (%q, %q, %v), want (%q, %q, true)", gotUser, gotPass, gotOK, "anon", "")
	}
	if req.Header.Get("Authorization") != "" {
		t.Error("original request must not be mutated")
	}
}

// TestNTLMAuth_Name verifies the auth scheme name.
func TestNTLMAuth_Name(t *testing.T) {
	a := NewNTLMAuth(creds.DomainCredential{})
	if a.Name() != "NTLM" {
		t.Errorf("Name() = %q, want %q", a.Name(), "NTLM")
	}
}

// TestNTLMAuth_Transport verifies NTLM transport is created.
func TestNTLMAuth_Transport(t *testing.T) {
	a := NewNTLMAuth(creds.DomainCredential{Domain: "TESTDOMAIN", Username: "testuser", Password: "testpass"})

	transport := a.Transport(http.DefaultTransport)
	if transport == nil {
		t.Fatal("Transport returned nil")
	}
	if transport == http.DefaultTransport {
		t.Error("Transport should wrap the base transport")
	}

	rt, ok := transport.(*credentialsRoundTripper)
	if !ok {
		t.Fatalf("Transport() = %T, want *credentialsRoundTripper", transport)
	}
	if got := rt.cred.UserName(); got != `TESTDOMAIN\testuser` {
		t.Errorf("UserName() = %q, want %q", got, `TESTDOMAIN\testuser`)
	}
}

// TestAuthenticator_Interface verifies all auth types implement Authenticator.
func TestAuthenticator_Interface(_ *testing.T) {
	var _ Authenticator = NewBasicAuth(creds.BasicCredential{})
	var _ Authenticator = NewNTLMAuth(creds.DomainCredential{})
	var _ Authenticator = NewProxyBasicAuth(creds.BasicCredential{})
}

func TestForCredential(t *testing.T) {
	tests := []struct {
		name     string
		cred     creds.Credential
		wantName string
		wantErr  bool
	}{
		{"basic", creds.BasicCredential{Username: "u"}, "Basic", false},
		{"basic pointer", &creds.BasicCredential{Username: "u"}, "Basic", false},
		{"domain", creds.DomainCredential{Domain: ".", Username: "u"}, "NTLM", false},
		{"domain pointer", &creds.DomainCredential{Domain: ".", Username: "u"}, "NTLM", false},
		{"nil", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ForCredential(tt.cred)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ForCredential() error = %v", err)
			}
			if a.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", a.Name(), tt.wantName)
			}
		})
	}
}
