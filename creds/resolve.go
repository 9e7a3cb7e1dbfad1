package creds

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultDomain is the NTLM domain used when the username carries none.
// It denotes the local machine.
const defaultDomain = "."

// Resolve maps p to a credential Set.
//
// The server entry (if any) precedes the proxy entry (if any). Both usernames
// empty yields an empty set and no error. The only failure is a malformed
// port, in which case no set is returned.
//
// A port is malformed when it is not a base-10 integer or when it falls
// outside 1-65535. The range check is stricter than a bare integer parse:
// "0", "-1" and "65536" all fail with ErrMalformedPort.
func Resolve(p Params) (*Set, error) {
	set := &Set{}

	if p.Username != "" {
		var cred Credential
		if ParseAuthType(p.AuthType) == AuthNTLM {
			domain, user := SplitDomainUsername(p.Username)
			cred = DomainCredential{Domain: domain, Username: user, Password: p.Password}
		} else {
			cred = BasicCredential{Username: p.Username, Password: p.Password}
		}

		port, err := parsePort("port", p.Port)
		if err != nil {
			return nil, err
		}
		set.add(Entry{
			Scope:      Scope{Host: p.Host, Port: port},
			Target:     TargetServer,
			Credential: cred,
		})
	}

	if p.ProxyUsername != "" {
		port := DefaultProxyPort
		if p.ProxyPort != "" {
			var err error
			if port, err = parsePort("proxyPort", p.ProxyPort); err != nil {
				return nil, err
			}
		}
		set.add(Entry{
			Scope:      Scope{Host: p.ProxyHost, Port: port},
			Target:     TargetProxy,
			Credential: BasicCredential{Username: p.ProxyUsername, Password: p.ProxyPassword},
		})
	}

	return set, nil
}

// SplitDomainUsername splits an NTLM username into domain and bare username.
//
// The first '/' is used as separator; only when the string has no '/' is the
// first '\' used. The domain is upper-cased with the root locale so results do
// not depend on the platform. Without a separator the domain is ".".
func SplitDomainUsername(username string) (domain, user string) {
	i := strings.IndexByte(username, '/')
	if i < 0 {
		i = strings.IndexByte(username, '\\')
	}
	if i < 0 {
		return defaultDomain, username
	}
	return cases.Upper(language.Und).String(username[:i]), username[i+1:]
}

// parsePort parses a base-10 TCP port. Signs are accepted as strconv does;
// the value must fall within 1-65535.
func parsePort(field, value string) (int, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, &PortError{Field: field, Value: value, Err: err}
	}
	if n < 1 || n > 65535 {
		return 0, &PortError{Field: field, Value: value}
	}
	return int(n), nil
}
