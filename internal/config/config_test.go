package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smnsjas/go-httpcreds/creds"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, int64(10<<20), cfg.LogMaxSize)
	assert.Equal(t, 3, cfg.LogMaxBackups)
	assert.Equal(t, creds.Params{}, cfg.Params)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTPCREDS_AUTH_TYPE", "NTLM")
	t.Setenv("HTTPCREDS_USERNAME", `CORP\alice`)
	t.Setenv("HTTPCREDS_PASSWORD", "pw")
	t.Setenv("HTTPCREDS_HOST", "intranet.example.com")
	t.Setenv("HTTPCREDS_PORT", "443")
	t.Setenv("HTTPCREDS_PROXY_USERNAME", "proxyuser")
	t.Setenv("HTTPCREDS_PROXY_HOST", "proxy.example.com")
	t.Setenv("HTTPCREDS_TIMEOUT", "5s")
	t.Setenv("HTTPCREDS_RETRY_MAX", "2")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, creds.Params{
		AuthType:      "NTLM",
		Username:      `CORP\alice`,
		Password:      "pw",
		Host:          "intranet.example.com",
		Port:          "443",
		ProxyUsername: "proxyuser",
		ProxyHost:     "proxy.example.com",
	}, cfg.Params)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 2, cfg.RetryMax)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "httpcreds.yaml")
	content := "username: bob\npassword: pw\nhost: api.example.com\nport: \"443\"\nproxy-port: \"3128\"\ntimeout: 2m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := NewViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.Params.Username)
	assert.Equal(t, "443", cfg.Params.Port)
	assert.Equal(t, "3128", cfg.Params.ProxyPort)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Config{
		Params: creds.Params{
			Username:      "u",
			Port:          "abc",
			ProxyUsername: "p",
			ProxyPort:     "xyz",
		},
		Timeout:  -time.Second,
		RetryMax: -1,
		LogLevel: "loud",
		LogFile:  "/tmp/x.log",
	}

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 6)
	assert.True(t, errors.Is(err, creds.ErrMalformedPort))
}
