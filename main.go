package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"orthoslide/app"
	"orthoslide/config"
	"orthoslide/frames"
	"orthoslide/log"
	"orthoslide/ui/layout"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version      = "0.3.0"
	contentFlag  string
	focusFlag    string
	widthFlag    int
	selectorFlag string
	rootCmd      = &cobra.Command{
		Use:   "orthoslide",
		Short: "orthoslide - Browse the practice home page carousels in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()
			applyFlags(cfg)

			pg, err := cfg.LoadPage()
			if err != nil {
				return fmt.Errorf("failed to load page: %w", err)
			}

			return app.Run(ctx, cfg, pg)
		},
	}

	framesCmd = &cobra.Command{
		Use:   "frames [ops...]",
		Short: "Print carousel frames for a scripted list of ops (next, prev, goto:N, resize:W)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()
			applyFlags(cfg)

			ops, err := frames.ParseOps(args)
			if err != nil {
				return err
			}
			cc, ok := cfg.Carousel(selectorFlag)
			if !ok {
				return fmt.Errorf("no carousel configured for %s", selectorFlag)
			}
			pg, err := cfg.LoadPage()
			if err != nil {
				return fmt.Errorf("failed to load page: %w", err)
			}

			width := widthFlag
			if width <= 0 {
				width = terminalViewport(cfg.CellWidthPx)
			}
			return frames.Run(cmd.OutOrStdout(), pg, cc, width, ops)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.LogFileName())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of orthoslide",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("orthoslide version %s\n", version)
		},
	}
)

// applyFlags lets command-line flags override the loaded config.
func applyFlags(cfg *config.Config) {
	if contentFlag != "" {
		cfg.ContentPath = contentFlag
	}
	if focusFlag != "" {
		cfg.Focus = focusFlag
	}
}

// terminalViewport is the viewport width of the attached terminal, or of an
// 80 column one when stdout is not a terminal.
func terminalViewport(cellWidthPx int) int {
	cols := layout.MinWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		cols = w
	}
	return layout.ViewportWidth(cols, cellWidthPx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentFlag, "content", "c", "",
		"YAML page content file (defaults to the built-in home page)")
	rootCmd.Flags().StringVarP(&focusFlag, "focus", "f", "",
		"Selector of the carousel to focus at start (e.g. '.clinic-carousel')")

	framesCmd.Flags().IntVarP(&widthFlag, "width", "w", 0,
		"Viewport width in pixels (defaults to the terminal width)")
	framesCmd.Flags().StringVarP(&selectorFlag, "selector", "s", ".clinic-carousel",
		"Selector of the carousel to drive")

	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
