package cmd

import (
	"fmt"

	"github.com/boozedog/smoovgarden/internal/calendar"
	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/spf13/cobra"
)

var seasonCmd = &cobra.Command{
	Use:   "season [month]",
	Short: "Print the season for a month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeason,
}

func init() {
	rootCmd.AddCommand(seasonCmd)
}

func runSeason(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	clock, err := clockFromFlag(flagDate)
	if err != nil {
		return err
	}

	month := int(clock.Now().Month())
	if len(args) > 0 {
		if month, err = parseMonth(args[0]); err != nil {
			return err
		}
	}

	fmt.Println(calendar.SeasonFor(month, hemisphere(cfg)))
	return nil
}
