// Package main implements the entry point for the jobtrack API server,
// which accepts text messages as asynchronous jobs and serves their
// status and generated responses over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/jobtrack-api/internal/config"
	"github.com/phrazzld/jobtrack-api/internal/platform/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set by ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return newRootCmd(config.NewViper())
}

// newRootCmd builds the command tree; the --port flag is bound into v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "jobtrack-api",
		Short:         "Asynchronous job tracker HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, v, cfgPath)
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to configuration file (yaml, json or toml)")
	root.Flags().IntP("port", "p", 8080, "HTTP listen port")
	_ = v.BindPFlag("server.port", root.Flags().Lookup("port"))

	root.AddCommand(versionCmd(), configCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jobtrack-api %s (commit: %s)\n", version, commit)
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load and validate configuration without starting the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Configuration OK (port %d, environment %s, eviction %q after %s)\n",
				cfg.Server.Port, cfg.Server.Environment, cfg.Eviction.Schedule, cfg.Eviction.MaxAge)
			return nil
		},
	})
	return cmd
}

// runServer loads configuration, builds the application and runs it until ctx is cancelled.
func runServer(ctx context.Context, v *viper.Viper, cfgPath string) error {
	cfg, err := config.LoadFrom(v, cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Server.LogLevel,
		Format: cfg.Server.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment,
		"version", version)

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
