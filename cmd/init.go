package cmd

import (
	"fmt"
	"os"

	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/boozedog/smoovgarden/internal/tips"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and a starter tips file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing tips file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Printf("Wrote config to %s\n", cfgPath)
	} else {
		fmt.Printf("Config already exists at %s\n", cfgPath)
	}

	path, err := tipsPath(cfg)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Printf("Tips file already exists at %s\n", path)
		return nil
	}

	if err := tips.WriteFile(path, tips.Starter()); err != nil {
		return fmt.Errorf("write tips: %w", err)
	}

	fmt.Printf("Wrote starter tips to %s\n", path)
	return nil
}
