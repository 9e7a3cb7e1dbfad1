package creds

import "strings"

// AuthType specifies the authentication mechanism for the primary scope.
type AuthType int

const (
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic AuthType = iota
	// AuthNTLM uses NTLM authentication with a domain-qualified username.
	AuthNTLM
)

// ParseAuthType maps a raw auth type name to an AuthType.
// The comparison is case-insensitive. Empty and unrecognised values map to AuthBasic.
func ParseAuthType(s string) AuthType {
	if strings.EqualFold(s, "ntlm") {
		return AuthNTLM
	}
	return AuthBasic
}

// String returns the lower-case scheme name.
func (t AuthType) String() string {
	switch t {
	case AuthNTLM:
		return "ntlm"
	default:
		return "basic"
	}
}
