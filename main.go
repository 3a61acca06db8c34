package main

import (
	"context"
	"encoding/json"
	"fmt"
	"holdmenu/app"
	"holdmenu/config"
	"holdmenu/inspect"
	"holdmenu/log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.1.0"

	activateOnFlag  string
	hapticFlag      string
	anchorEdgeFlag  string
	anchorFlag      string
	longPressFlag   int
	disableMoveFlag bool
	closeOnTapFlag  bool
	framedFlag      bool

	rootCmd = &cobra.Command{
		Use:   "holdmenu",
		Short: "holdmenu - hold or tap a card to lift it and open its action menu.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("holdmenu needs an interactive terminal")
			}

			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			return app.Run(context.Background(), cfg)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config and log paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			if path := inspect.GetInspectFile(); path != "" {
				fmt.Printf("Inspect snapshots: %s\n", path)
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of holdmenu",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("holdmenu version %s\n", version)
		},
	}
)

// applyFlags overrides config with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("activate-on") {
		cfg.ActivateOn = activateOnFlag
	}
	if flags.Changed("haptic") {
		cfg.HapticFeedback = hapticFlag
	}
	if flags.Changed("anchor-edge") {
		cfg.AnchorEdge = anchorEdgeFlag
	}
	if flags.Changed("anchor") {
		cfg.AnchorPosition = anchorFlag
	}
	if flags.Changed("long-press-ms") {
		cfg.LongPressMinDurationMs = longPressFlag
	}
	if flags.Changed("disable-move") {
		cfg.DisableMove = disableMoveFlag
	}
	if flags.Changed("close-on-tap") {
		cfg.CloseOnTap = closeOnTapFlag
	}
	if flags.Changed("framed") {
		cfg.FramedPreview = framedFlag
	}
}

func init() {
	rootCmd.Flags().StringVarP(&activateOnFlag, "activate-on", "a", "",
		"Gesture that opens a menu: 'hold', 'tap' or 'double-tap'")
	rootCmd.Flags().StringVar(&hapticFlag, "haptic", "",
		"Feedback on activation: Selection, Light, Medium, Heavy, Success, Warning, Error or None")
	rootCmd.Flags().StringVar(&anchorEdgeFlag, "anchor-edge", "",
		"Line the preview up with the item's 'top' or 'bottom' edge")
	rootCmd.Flags().StringVar(&anchorFlag, "anchor", "",
		"Pin the menu to one corner of the preview: 'top-left', 'top-right', 'bottom-left' or 'bottom-right'")
	rootCmd.Flags().IntVar(&longPressFlag, "long-press-ms", 0,
		"Hold threshold in milliseconds")
	rootCmd.Flags().BoolVar(&disableMoveFlag, "disable-move", false,
		"Keep the preview over the item instead of moving it on screen")
	rootCmd.Flags().BoolVar(&closeOnTapFlag, "close-on-tap", false,
		"Close the menu when the preview is clicked")
	rootCmd.Flags().BoolVar(&framedFlag, "framed", false,
		"Wrap the preview with a close control")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
