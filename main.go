package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"switcherpanel/app"
	"switcherpanel/config"
	"switcherpanel/inspect"
	"switcherpanel/log"
	"switcherpanel/panel"
	"switcherpanel/ui/layout"
)

var (
	version       = "0.1.0"
	coverFlag     int
	parallaxFlag  int
	collapsedFlag bool
	rootCmd       = &cobra.Command{
		Use:   "switcherpanel",
		Short: "switcherpanel - a sliding switcher panel for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			return app.Run(ctx, cfg)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and panel geometry",
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
			fmt.Printf("Log: %s\n", log.FileName())
			if inspect.IsEnabled() {
				fmt.Printf("Inspect: %s\n", inspect.Path())
			}

			width, height, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				fmt.Printf("Geometry: unavailable (%v)\n", err)
				return nil
			}
			return printGeometry(cfg, width, height)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of switcherpanel",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("switcherpanel version %s\n", version)
		},
	}
)

// applyFlags lets command line flags override the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("cover") {
		cfg.CoverHeight = coverFlag
	}
	if cmd.Flags().Changed("parallax") {
		cfg.ParallaxOffset = parallaxFlag
	}
	if collapsedFlag {
		cfg.InitialStatus = panel.StatusCollapsed.String()
	}
}

func printGeometry(cfg *config.Config, width, height int) error {
	c := layout.ComputeConstraints(width, height, cfg.SwitcherHeight, cfg.CoverHeight)
	w, h := c.PanelSpecs()
	m, err := panel.Measure(w, h, panel.Padding{}, c.CoverHeight, c.PanelChildren())
	if err != nil {
		return fmt.Errorf("failed to measure panel: %w", err)
	}

	g := m.Geometry
	fmt.Printf("Terminal: %dx%d (%s)\n", width, height, c.Mode)
	fmt.Printf("Panel: %dx%d at column %d\n", c.PanelWidth, c.PanelHeight, c.PanelLeft)
	fmt.Printf("Switcher: %d rows, content: %d rows, cover: %d rows\n",
		g.SwitcherHeight, g.ContentHeight, g.CoverHeight)
	fmt.Printf("Slide range: %d, expanded top: %d, collapsed top: %d\n",
		g.SlideRange(), g.ExpandedTop(), g.CollapsedTop())
	return nil
}

func init() {
	rootCmd.Flags().IntVar(&coverFlag, "cover", 0,
		"Rows of content left visible when collapsed")
	rootCmd.Flags().IntVar(&parallaxFlag, "parallax", 0,
		"Rows the switcher moves up when the content is expanded")
	rootCmd.Flags().BoolVar(&collapsedFlag, "collapsed", false,
		"Start with the content collapsed")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
