package cmd

import (
	"fmt"

	"github.com/boozedog/smoovgarden/internal/calendar"
	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/spf13/cobra"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <month>",
	Short: "Print the effective month after the hemisphere offset",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdjust,
}

func init() {
	rootCmd.AddCommand(adjustCmd)
}

func runAdjust(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	month, err := parseMonth(args[0])
	if err != nil {
		return err
	}

	effective := calendar.AdjustMonth(month, hemisphere(cfg))
	fmt.Printf("%d (%s)\n", effective, calendar.MonthName(effective))
	return nil
}
