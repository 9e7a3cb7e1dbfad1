// Package auth turns resolved credentials into http.RoundTripper decorators.
//
// # Supported Authentication Methods
//
//   - Basic: HTTP Basic authentication (use only over TLS)
//   - NTLM: NT LAN Manager authentication (via github.com/Azure/go-ntlmssp)
//   - Proxy Basic: Proxy-Authorization for plain HTTP requests sent through a proxy
//
// # Usage
//
// Authenticate every request against the server entry of a resolved set:
//
//	set, _ := creds.Resolve(params)
//	rt, err := auth.ServerTransport(set, http.DefaultTransport)
//	if err != nil {
//	    return err
//	}
//	client := &http.Client{Transport: rt}
//
// Requests whose host and port do not match the credential scope are sent
// without credentials.
package auth
