package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/boozedog/smoovgarden/internal/observability"
	"github.com/boozedog/smoovgarden/internal/report"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sg",
	Short: "smoovgarden — seasonal gardening advice",
	Long: `Seasonal and monthly gardening advice for the northern and southern hemispheres.
Run without a subcommand to print today's advice for both hemispheres.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runAdvice,
}

var (
	flagTips       string
	flagDate       string
	flagHemisphere string
	flagLogLevel   string
	flagLogFormat  string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagTips, "tips", "", "tips file to read (yaml, json or toml)")
	pf.StringVar(&flagDate, "date", "", "use this date (YYYY-MM-DD) instead of today")
	pf.StringVar(&flagHemisphere, "hemisphere", "", "north or south")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&flagLogFormat, "log-format", "", "text or json")
	rootCmd.Flags().StringVar(&adviceFormat, "format", "", "output format: "+report.FormatNames())
}

// setupLogging installs the default slog logger. Diagnostics go to stderr so
// reports on stdout stay clean.
func setupLogging(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := firstNonEmpty(flagLogLevel, cfg.Settings.LogLevel)
	format := firstNonEmpty(flagLogFormat, cfg.Settings.LogFormat)
	slog.SetDefault(observability.NewLogger(os.Stderr, level, format))
	return nil
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
