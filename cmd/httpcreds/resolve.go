package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/smnsjas/go-httpcreds/creds"
)

func newResolveCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the credential set resolved from the parameters (passwords hidden)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := creds.Resolve(a.cfg.Params)
			if err != nil {
				return err
			}
			a.logger.Debug("Resolved credentials", "params", a.cfg.Params, "entries", set.Len())

			switch output {
			case "table":
				return renderTable(cmd.OutOrStdout(), set)
			case "json":
				return renderJSON(cmd.OutOrStdout(), set)
			default:
				return fmt.Errorf("unknown output format %q (valid: table, json)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")
	return cmd
}

// entryView is the printable form of a creds.Entry.
type entryView struct {
	Target   string `json:"target"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Scheme   string `json:"scheme"`
	Domain   string `json:"domain,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

func viewOf(e creds.Entry) entryView {
	v := entryView{
		Target: e.Target.String(),
		Host:   e.Scope.Host,
		Port:   e.Scope.Port,
		Scheme: e.Credential.Scheme(),
	}
	switch c := e.Credential.(type) {
	case creds.DomainCredential:
		v.Domain = c.Domain
		v.Username = c.Username
	default:
		v.Username = c.UserName()
	}
	if e.Credential.Secret() != "" {
		v.Password = "********"
	}
	return v
}

func renderTable(w io.Writer, set *creds.Set) error {
	if set.Len() == 0 {
		_, err := fmt.Fprintln(w, "No credentials (anonymous access).")
		return err
	}

	headers := []string{"Target", "Scope", "Scheme", "Domain", "Username", "Password"}
	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader(headers),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
	)
	for _, e := range set.Entries() {
		v := viewOf(e)
		if err := table.Append([]string{
			v.Target,
			e.Scope.String(),
			v.Scheme,
			v.Domain,
			v.Username,
			v.Password,
		}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func renderJSON(w io.Writer, set *creds.Set) error {
	views := make([]entryView, 0, set.Len())
	for _, e := range set.Entries() {
		views = append(views, viewOf(e))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}
