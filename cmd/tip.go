package cmd

import (
	"fmt"

	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/spf13/cobra"
)

var tipCmd = &cobra.Command{
	Use:   "tip [month]",
	Short: "Print the gardening tip for a month",
	Long:  `Prints the tip for the given month (1-12), or the current month when omitted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTip,
}

func init() {
	rootCmd.AddCommand(tipCmd)
}

func runTip(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	r, err := loadResolver(cfg)
	if err != nil {
		return err
	}

	month, err := monthArg(args, r)
	if err != nil {
		return err
	}

	fmt.Println(r.TipFor(month, hemisphere(cfg)))
	return nil
}
