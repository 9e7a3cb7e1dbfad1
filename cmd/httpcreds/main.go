// Command httpcreds resolves HTTP authentication parameters into scoped
// credentials and can issue a request with them.
//
// Passwords can be provided via:
//   - --password / --proxy-password flags (least secure, visible in process list)
//   - HTTPCREDS_PASSWORD / HTTPCREDS_PROXY_PASSWORD environment variables (recommended)
//   - stdin prompt for the server password (get only, when neither is set)
//
// Usage:
//
//	httpcreds resolve --auth-type ntlm --username 'CORP\alice' --host intranet --port 443
//	httpcreds get https://intranet.example.com/status --auth-type ntlm --username 'CORP\alice'
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
// Cobra's own error printing is silenced, so failures are reported here.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
