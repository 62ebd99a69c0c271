// Package main implements the interactive demo for the toast library,
// a terminal notification engine with animated, anchor-stacked toasts.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Gaurav-Gosain/toast/internal/config"
	"github.com/Gaurav-Gosain/toast/internal/theme"
	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode     bool
	asciiOnly     bool
	themeName     string
	listThemes    bool
	noAnimations  bool
	fps           int
	maxConcurrent int
	overflow      string
	anchorName    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toast",
		Short: "Interactive demo for the toast notification library",
		Long: `toast - terminal toast notifications

An interactive showcase for the toast library. Number keys fire preset
notifications across anchors, animations, and severity levels; the pool,
overflow policy, and theming are all configurable.`,
		Example: `  # Run the demo
  toast

  # Run with a specific theme
  toast --theme dracula

  # List all available themes
  toast --list-themes

  # ASCII icons, no animations
  toast --ascii-only --no-animations

  # Tight pool that rejects new toasts at the cap
  toast --max-concurrent 2 --overflow discard-newest

  # Run with debug logging
  toast --debug`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runDemo()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Nerd Font icons")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Make toasts appear and disappear instantly")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "Refresh rate while toasts animate (default: from config)")
	rootCmd.PersistentFlags().IntVar(&maxConcurrent, "max-concurrent", 0, "Cap on live toasts per anchor (default: from config)")
	rootCmd.PersistentFlags().StringVar(&overflow, "overflow", "", "Policy at the cap: discard-oldest, discard-newest (default: from config)")
	rootCmd.PersistentFlags().StringVar(&anchorName, "anchor", "", "Default anchor for demo toasts, e.g. bottom-right (default: from config)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the demo configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
