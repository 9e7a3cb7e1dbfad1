package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/smnsjas/go-httpcreds/creds"
	"github.com/smnsjas/go-httpcreds/transport"
)

func newGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request authenticated with the resolved credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid url: %w", err)
			}

			cfg := a.cfg
			cfg.Params = withURLDefaults(a.cfg.Params, target)
			if err := cfg.Validate(); err != nil {
				return err
			}

			params := cfg.Params
			if params.Username != "" && params.Password == "" && stdinIsTerminal() {
				pw, err := promptPassword(cmd.ErrOrStderr(), "Password: ")
				if err != nil {
					return err
				}
				params.Password = pw
			}

			set, err := creds.Resolve(params)
			if err != nil {
				return err
			}

			tr, err := transport.NewHTTPTransport(
				transport.WithCredentials(set),
				transport.WithTimeout(cfg.Timeout),
				transport.WithInsecureSkipVerify(cfg.Insecure),
				transport.WithRetryMax(cfg.RetryMax),
				transport.WithProxyFromEnvironment(cfg.ProxyFromEnv),
				transport.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			defer tr.CloseIdleConnections()

			body, err := tr.Get(cmd.Context(), target.String())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}

	flags := cmd.Flags()
	flags.Duration("timeout", 60*time.Second, "Request timeout")
	flags.Bool("insecure", false, "Skip TLS certificate verification (testing only)")
	flags.Int("retry-max", 0, "Retries for failed requests")
	flags.Bool("proxy-from-env", false, "Use HTTP_PROXY/HTTPS_PROXY/NO_PROXY when no proxy credentials are set")
	if err := a.v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
	return cmd
}

// withURLDefaults fills an empty host and port from the request URL.
func withURLDefaults(p creds.Params, u *url.URL) creds.Params {
	if p.Host == "" {
		p.Host = u.Hostname()
	}
	if p.Port == "" {
		switch {
		case u.Port() != "":
			p.Port = u.Port()
		case u.Scheme == "https":
			p.Port = "443"
		default:
			p.Port = "80"
		}
	}
	return p
}
