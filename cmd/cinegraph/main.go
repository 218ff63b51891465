package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agenthands/cinegraph/internal/config"
	"github.com/agenthands/cinegraph/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config

	rootCmd = &cobra.Command{
		Use:   "cinegraph",
		Short: "Explore how titles from two movie catalogs connect through directors and cast",
		Long: `cinegraph builds a relationship graph over two movie catalogs, linking
titles that share a director or a cast member, and answers queries over it.

Run "cinegraph normalize" once to turn the raw CSV catalogs into cached
records, then "cinegraph" (or "cinegraph shell") for the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE:              runShell,
	}
)

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		logging.Debug().Msg("no .env file found, using environment")
	}

	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var err error
	if path == "" {
		cfg, err = config.LoadOrDefault(config.DefaultPath)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: logFormat(cmd, cfg.Log.Format)})
	return nil
}

// logFormat falls back to JSON for the server and console output otherwise.
func logFormat(cmd *cobra.Command, configured string) string {
	if configured != "" {
		return configured
	}
	if cmd == serveCmd {
		return "json"
	}
	return "console"
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default config/config.toml or $CONFIG_PATH)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
