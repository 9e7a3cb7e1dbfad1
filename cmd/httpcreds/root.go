package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smnsjas/go-httpcreds/internal/config"
	applog "github.com/smnsjas/go-httpcreds/internal/log"
)

// app carries state shared by subcommands.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "httpcreds",
		Short:         "Resolve HTTP authentication parameters into scoped credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				a.v.SetConfigFile(configFile)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", configFile, err)
				}
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return a.setupLogging(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	flags.String("auth-type", "", "Authentication type for the server: basic (default) or ntlm")
	flags.String("username", "", `Server username; with ntlm may be DOMAIN\user or DOMAIN/user`)
	flags.String("password", "", "Server password (use HTTPCREDS_PASSWORD instead)")
	flags.String("host", "", "Server host the credential is scoped to")
	flags.String("port", "", "Server port the credential is scoped to")
	flags.String("proxy-host", "", "Proxy host")
	flags.String("proxy-port", "", "Proxy port (default 8080)")
	flags.String("proxy-username", "", "Proxy username")
	flags.String("proxy-password", "", "Proxy password (use HTTPCREDS_PROXY_PASSWORD instead)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.Int64("log-max-size", 10<<20, "Rotate the log file after this many bytes")
	flags.Int("log-max-backups", 3, "Rotated log files to keep")

	if err := a.v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
	rootCmd.AddCommand(newResolveCmd(a), newGetCmd(a))
	return rootCmd
}

// setupLogging installs a redacting slog logger as the default.
func (a *app) setupLogging(stderr io.Writer) error {
	level, err := applog.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	w := stderr
	if a.cfg.LogFile != "" {
		rw, err := applog.OpenRotating(a.cfg.LogFile, a.cfg.LogMaxSize, a.cfg.LogMaxBackups)
		if err != nil {
			return err
		}
		a.closer = rw
		w = rw
	}

	a.logger = applog.New(w, level)
	slog.SetDefault(a.logger)
	return nil
}

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return isTerminal(int(os.Stdin.Fd()))
}
