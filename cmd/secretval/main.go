package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/loambank/secretval"
	"github.com/loambank/secretval/audit"
	"github.com/loambank/secretval/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "secretval",
	Short: "Store typed values in the platform keychain",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log store failures to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cliEnv is everything a subcommand needs: the configured backend, the
// service prefix, and the value options derived from the flags.
type cliEnv struct {
	backend secretval.Backend
	cfg     *config.Config
	opts    []secretval.Option
	cleanup func()
}

func newEnv() (*cliEnv, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}

	env := &cliEnv{
		backend: secretval.NewSystemBackend(),
		cfg:     cfg,
		cleanup: func() {},
	}

	if cfg.AuditLog != "" {
		auditLog, err := audit.NewLogger(cfg.AuditLog)
		if err != nil {
			return nil, err
		}
		env.backend = secretval.NewAuditedBackend(env.backend, auditLog, "cli")
		env.cleanup = func() { auditLog.Close() }
	}

	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		env.opts = append(env.opts, secretval.WithLogger(logger))
	}

	return env, nil
}

// service applies the configured prefix to a service argument.
func (e *cliEnv) service(arg string) string {
	return e.cfg.ServicePrefix + arg
}
