// Package config loads httpcreds settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/smnsjas/go-httpcreds/creds"
	applog "github.com/smnsjas/go-httpcreds/internal/log"
)

// EnvPrefix prefixes every environment variable, e.g. HTTPCREDS_PROXY_HOST.
const EnvPrefix = "HTTPCREDS"

// Config holds everything the command needs.
type Config struct {
	// Params are the raw authentication parameters.
	Params creds.Params `mapstructure:"-"`

	Timeout       time.Duration `mapstructure:"timeout"`
	Insecure      bool          `mapstructure:"insecure"`
	RetryMax      int           `mapstructure:"retry-max"`
	ProxyFromEnv  bool          `mapstructure:"proxy-from-env"`
	LogLevel      string        `mapstructure:"log-level"`
	LogFile       string        `mapstructure:"log-file"`
	LogMaxSize    int64         `mapstructure:"log-max-size"`
	LogMaxBackups int           `mapstructure:"log-max-backups"`
}

var defaults = map[string]any{
	"auth-type":       "",
	"username":        "",
	"password":        "",
	"host":            "",
	"port":            "",
	"proxy-host":      "",
	"proxy-port":      "",
	"proxy-username":  "",
	"proxy-password":  "",
	"timeout":         60 * time.Second,
	"insecure":        false,
	"retry-max":       0,
	"proxy-from-env":  false,
	"log-level":       "warn",
	"log-file":        "",
	"log-max-size":    int64(10 << 20),
	"log-max-backups": 3,
}

// NewViper returns a viper instance with defaults registered and
// HTTPCREDS_* environment variables bound.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load decodes v into a Config. It does not validate.
func Load(v *viper.Viper) (Config, error) {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))

	var cfg Config
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("config: decode settings: %w", err)
	}
	if err := v.Unmarshal(&cfg.Params, hook); err != nil {
		return Config{}, fmt.Errorf("config: decode auth parameters: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.RetryMax < 0 {
		result = multierror.Append(result, fmt.Errorf("retry-max must not be negative, got %d", c.RetryMax))
	}
	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}
	if c.LogFile != "" && c.LogMaxSize <= 0 {
		result = multierror.Append(result, fmt.Errorf("log-max-size must be positive, got %d", c.LogMaxSize))
	}

	// Server and proxy are checked separately so both port errors surface.
	server := creds.Params{AuthType: c.Params.AuthType, Username: c.Params.Username, Host: c.Params.Host, Port: c.Params.Port}
	if _, err := creds.Resolve(server); err != nil {
		result = multierror.Append(result, err)
	}
	proxy := creds.Params{ProxyUsername: c.Params.ProxyUsername, ProxyHost: c.Params.ProxyHost, ProxyPort: c.Params.ProxyPort}
	if _, err := creds.Resolve(proxy); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
