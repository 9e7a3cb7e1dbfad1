package creds

import (
	"net"
	"strconv"
	"strings"
)

// Scope identifies the origin a credential applies to.
type Scope struct {
	Host string
	Port int
}

// String returns the scope as host:port.
func (s Scope) String() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Matches reports whether the scope covers host and port.
// Host comparison is case-insensitive; there are no wildcards.
func (s Scope) Matches(host string, port int) bool {
	return s.Port == port && strings.EqualFold(s.Host, host)
}

// Target tells which parameter group produced an Entry.
type Target int

const (
	// TargetServer marks the entry built from Username/Host/Port.
	TargetServer Target = iota
	// TargetProxy marks the entry built from ProxyUsername/ProxyHost/ProxyPort.
	TargetProxy
)

// String returns the target name.
func (t Target) String() string {
	if t == TargetProxy {
		return "proxy"
	}
	return "server"
}

// Entry binds a Credential to a Scope.
type Entry struct {
	Scope      Scope
	Target     Target
	Credential Credential
}

// Set is an ordered, immutable collection of scoped credentials.
// The zero value is an empty set.
type Set struct {
	entries []Entry
}

// Len returns the number of entries.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of the entries in resolution order.
func (s *Set) Entries() []Entry {
	if s == nil || len(s.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup returns the credential of the first entry whose scope matches host and port.
// When the server and proxy share a scope the server entry wins, since it is added first.
func (s *Set) Lookup(host string, port int) (Credential, bool) {
	if s == nil {
		return nil, false
	}
	for _, e := range s.entries {
		if e.Scope.Matches(host, port) {
			return e.Credential, true
		}
	}
	return nil, false
}

// Server returns the entry resolved from the primary parameters.
func (s *Set) Server() (Entry, bool) {
	return s.byTarget(TargetServer)
}

// Proxy returns the entry resolved from the proxy parameters.
func (s *Set) Proxy() (Entry, bool) {
	return s.byTarget(TargetProxy)
}

func (s *Set) byTarget(t Target) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	for _, e := range s.entries {
		if e.Target == t {
			return e, true
		}
	}
	return Entry{}, false
}

func (s *Set) add(e Entry) {
	s.entries = append(s.entries, e)
}
