// Package transport provides an HTTP client that consumes a resolved
// credential set.
//
// The server entry of the set authenticates requests to its scope (Basic or
// NTLM). The proxy entry routes every request through that proxy and answers
// its Basic challenge, both for plain HTTP and for CONNECT tunnels.
//
// # Usage
//
//	set, err := creds.Resolve(params)
//	if err != nil {
//	    return err
//	}
//	tr, err := transport.NewHTTPTransport(
//	    transport.WithCredentials(set),
//	    transport.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	body, err := tr.Get(ctx, "https://intranet.example.com/status")
package transport
