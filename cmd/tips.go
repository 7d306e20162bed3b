package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/boozedog/smoovgarden/internal/calendar"
	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/boozedog/smoovgarden/internal/tips"
	"github.com/spf13/cobra"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "List the loaded tip table",
	Args:  cobra.NoArgs,
	RunE:  runTips,
}

func init() {
	rootCmd.AddCommand(tipsCmd)
}

func runTips(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	path, err := tipsPath(cfg)
	if err != nil {
		return err
	}

	tbl := tips.Load(path)
	if tbl.Source() == tips.SourceFile {
		fmt.Printf("Source: %s (%s)\n", tbl.Source(), tbl.Path())
	} else {
		fmt.Printf("Source: %s\n", tbl.Source())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range tbl.Months() {
		tip, _ := tbl.Get(m)
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", m, calendar.MonthName(m), truncate(tip, 60)); err != nil {
			return err
		}
	}

	return w.Flush()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
