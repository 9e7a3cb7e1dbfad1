package creds

import "log/slog"

// DefaultProxyPort is used when a proxy username is set but ProxyPort is empty.
const DefaultProxyPort = 8080

// Params holds raw authentication parameters as a host runtime supplies them.
// All fields are strings; Resolve performs the parsing.
type Params struct {
	// AuthType selects the scheme for the primary scope ("basic" or "ntlm").
	// Empty means basic.
	AuthType string `mapstructure:"auth-type"`

	// Username for the primary scope. Empty means no primary credential.
	Username string `mapstructure:"username"`

	// Password for the primary scope. Passed through unchanged.
	Password string `mapstructure:"password"`

	// Host of the primary scope.
	Host string `mapstructure:"host"`

	// Port of the primary scope. Required when Username is set.
	Port string `mapstructure:"port"`

	// ProxyHost of the proxy scope. Required when ProxyUsername is set.
	ProxyHost string `mapstructure:"proxy-host"`

	// ProxyPort of the proxy scope. Defaults to DefaultProxyPort.
	ProxyPort string `mapstructure:"proxy-port"`

	// ProxyUsername for the proxy scope. Empty means no proxy credential.
	ProxyUsername string `mapstructure:"proxy-username"`

	// ProxyPassword for the proxy scope.
	ProxyPassword string `mapstructure:"proxy-password"`
}

// LogValue implements slog.LogValuer, redacting both passwords.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("auth_type", p.AuthType),
		slog.String("username", p.Username),
		slog.String("password", redactIfSet(p.Password)),
		slog.String("host", p.Host),
		slog.String("port", p.Port),
		slog.String("proxy_host", p.ProxyHost),
		slog.String("proxy_port", p.ProxyPort),
		slog.String("proxy_username", p.ProxyUsername),
		slog.String("proxy_password", redactIfSet(p.ProxyPassword)),
	)
}
