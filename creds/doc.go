// Package creds resolves raw, string-typed HTTP authentication parameters into
// a set of scoped credentials that an HTTP client can consume.
//
// # Resolution Rules
//
//   - AuthType is compared case-insensitively; an empty value means Basic.
//   - A non-empty Username produces one entry scoped to Host:Port. With NTLM
//     the username may carry a domain ("CORP/alice" or "CORP\alice"); the
//     domain is upper-cased and defaults to "." when absent.
//   - A non-empty ProxyUsername produces one Basic entry scoped to
//     ProxyHost:ProxyPort. ProxyPort defaults to 8080.
//   - A port that is not a base-10 integer fails with ErrMalformedPort.
//
// # Usage
//
//	set, err := creds.Resolve(creds.Params{
//	    AuthType: "ntlm",
//	    Username: `CORP\alice`,
//	    Password: "secret",
//	    Host:     "intranet.example.com",
//	    Port:     "443",
//	})
//	if err != nil {
//	    return err
//	}
//	for _, e := range set.Entries() {
//	    fmt.Println(e.Scope, e.Credential.Scheme())
//	}
//
// Resolve keeps no state and is safe to call from multiple goroutines.
package creds
