package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/widgetbot/internal/widgetbot"
)

var (
	updateFrom string
	updateTo   string
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Run the plugin's install, update and uninstall hooks",
}

// runHook opens the database and calls fn with the plugin lifecycle hooks.
func runHook(cmd *cobra.Command, fn func(p *widgetbot.Plugin) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)
	cmd.SetContext(logger.WithContext(cmd.Context()))

	database, _, err := openSettings(cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(widgetbot.NewPlugin(database))
}

var pluginInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Prepare settings storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, func(p *widgetbot.Plugin) error { return p.Install(cmd.Context()) })
	},
}

var pluginUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Migrate storage between plugin versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, func(p *widgetbot.Plugin) error { return p.Update(cmd.Context(), updateFrom, updateTo) })
	},
}

var pluginUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove every widgetbot setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, func(p *widgetbot.Plugin) error { return p.Uninstall(cmd.Context()) })
	},
}

func init() {
	pluginUpdateCmd.Flags().StringVar(&updateFrom, "from", "", "previous plugin version")
	pluginUpdateCmd.Flags().StringVar(&updateTo, "to", Version, "new plugin version")
	pluginCmd.AddCommand(pluginInstallCmd, pluginUpdateCmd, pluginUninstallCmd)
	rootCmd.AddCommand(pluginCmd)
}
