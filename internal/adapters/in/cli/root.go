// Package cli implements the CLI adapter for hostpage.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/hostpage/internal/app"
	"github.com/bnema/hostpage/internal/config"
	"github.com/bnema/hostpage/pkg/logger"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates the root command for the hostpage CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "hostpage",
		Short: "hostpage - build, publish and serve a small web page",
		Long: `hostpage builds a container image and publishes it to AWS ECR,
and serves a static page together with a page showing the host name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newPublishCmd(opts))
	rootCmd.AddCommand(newImagesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on error. SIGINT and
// SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	cobra.CheckErr(err)
}

// loadConfig reads the config file and applies the log level. The flag wins
// over the config, and ENV=dev keeps debug logging unless the flag is set.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	l := logger.GetLogger()
	l.ConfigureFromEnv()

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	switch {
	case o.logLevel != "":
		l.SetLogLevel(o.logLevel)
	case os.Getenv("ENV") != "dev":
		l.SetLogLevel(cfg.Logging.Level)
	}
	return cfg, nil
}

// newKernel builds the kernel for cfg using the shared logger.
func newKernel(ctx context.Context, cfg *config.Config) (*app.Kernel, error) {
	return app.NewKernel(ctx, cfg, logger.GetLogger().Logger)
}
