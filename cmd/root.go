package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/widgetbot/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "widgetbot",
	Short: "WidgetBot chat widget plugin for the hosting panel",
	Long: `widgetbot serves the public WidgetBot configuration endpoint and the
iframe-able embed page for the hosting panel, and manages the plugin's
settings (server and channel IDs, Crate display options).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
