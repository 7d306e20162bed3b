package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/boozedog/smoovgarden/internal/advice"
	"github.com/boozedog/smoovgarden/internal/calendar"
	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/boozedog/smoovgarden/internal/report"
	"github.com/spf13/cobra"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Print today's gardening advice",
	Long:  `Prints the month, season and tip for each hemisphere. Pass --hemisphere (or set hemisphere in config.toml) to limit the report to one.`,
	Args:  cobra.NoArgs,
	RunE:  runAdvice,
}

var adviceFormat string

func init() {
	adviceCmd.Flags().StringVar(&adviceFormat, "format", "", "output format: "+report.FormatNames())
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	format, err := report.ParseFormat(firstNonEmpty(adviceFormat, cfg.Settings.Format))
	if err != nil {
		return err
	}

	r, err := loadResolver(cfg)
	if err != nil {
		return err
	}

	var records []advice.Advice
	selected := firstNonEmpty(flagHemisphere, cfg.Settings.Hemisphere)
	switch strings.ToLower(strings.TrimSpace(selected)) {
	case "", "both", "all":
		records = r.AdviceAll()
	default:
		records = []advice.Advice{r.Advice(calendar.ParseHemisphere(selected))}
	}

	return report.Render(os.Stdout, format, records)
}
