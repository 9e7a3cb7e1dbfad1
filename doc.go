// Package httpcreds resolves string-typed HTTP authentication parameters into
// scoped credentials and provides an HTTP client that consumes them.
//
// The module is organized into layers:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  cmd/httpcreds  CLI: resolve and get                    │
//	├─────────────────────────────────────────────────────────┤
//	│  transport/     HTTP client (proxy, retries, request IDs)│
//	├─────────────────────────────────────────────────────────┤
//	│  auth/          Basic, NTLM and proxy round trippers    │
//	├─────────────────────────────────────────────────────────┤
//	│  creds/         Parameter resolution (pure, no I/O)     │
//	└─────────────────────────────────────────────────────────┘
//
// # Quick Start
//
//	set, err := creds.Resolve(creds.Params{
//	    AuthType:      "ntlm",
//	    Username:      `CORP\alice`,
//	    Password:      "password",
//	    Host:          "intranet.example.com",
//	    Port:          "443",
//	    ProxyUsername: "proxyuser",
//	    ProxyPassword: "proxypass",
//	    ProxyHost:     "proxy.example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tr, err := transport.NewHTTPTransport(transport.WithCredentials(set))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, err := tr.Get(ctx, "https://intranet.example.com/status")
package httpcreds
