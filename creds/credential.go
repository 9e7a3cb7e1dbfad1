package creds

import "log/slog"

const redacted = "[REDACTED]"

// Credential is a resolved credential bound to a Scope.
type Credential interface {
	// Scheme returns the authentication scheme name ("Basic" or "NTLM").
	Scheme() string

	// UserName returns the user principal as the scheme expects it.
	UserName() string

	// Secret returns the password.
	Secret() string
}

// BasicCredential holds a plain username and password.
type BasicCredential struct {
	Username string
	Password string
}

// Scheme implements Credential.
func (c BasicCredential) Scheme() string { return "Basic" }

// UserName implements Credential.
func (c BasicCredential) UserName() string { return c.Username }

// Secret implements Credential.
func (c BasicCredential) Secret() string { return c.Password }

// LogValue implements slog.LogValuer so the password never reaches a log sink.
func (c BasicCredential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", c.Username),
		slog.String("password", redactIfSet(c.Password)),
	)
}

// DomainCredential holds an NTLM credential split into domain and bare username.
type DomainCredential struct {
	Domain   string
	Username string
	Password string
}

// Scheme implements Credential.
func (c DomainCredential) Scheme() string { return "NTLM" }

// UserName returns the down-level logon name, DOMAIN\user.
func (c DomainCredential) UserName() string {
	return c.Domain + `\` + c.Username
}

// Secret implements Credential.
func (c DomainCredential) Secret() string { return c.Password }

// LogValue implements slog.LogValuer.
func (c DomainCredential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("domain", c.Domain),
		slog.String("username", c.Username),
		slog.String("password", redactIfSet(c.Password)),
	)
}

func redactIfSet(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}
