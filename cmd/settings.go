package cmd

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/widgetbot/internal/widgetbot"
)

var settingsNamespace string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and write plugin settings",
	Long: `Manage the plugin settings stored in the database. The WidgetBot plugin reads:
  server_id, channel_id, crate_color, crate_location_vertical,
  crate_location_horizontal, crate_notifications`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openSettings(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		v, ok, err := settingsSource(cfg, store).Get(cmd.Context(), settingsNamespace, args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("setting %s.%s is not set", settingsNamespace, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Create or replace a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openSettings(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := store.Set(cmd.Context(), settingsNamespace, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s.%s = %s\n", settingsNamespace, args[0], args[1])
		return nil
	},
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openSettings(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		removed, err := store.Unset(cmd.Context(), settingsNamespace, args[0])
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s.%s was not set\n", settingsNamespace, args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s.%s\n", settingsNamespace, args[0])
		return nil
	},
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the settings of a namespace",
	Long: `Lists every stored setting of the namespace. For the widgetbot namespace
every key the plugin reads is listed, with (unset) marking missing ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openSettings(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		list, err := store.List(cmd.Context(), settingsNamespace)
		if err != nil {
			return err
		}
		var keys []string
		if settingsNamespace == widgetbot.Namespace {
			keys = append(keys, widgetbot.Keys...)
		}
		for _, s := range list {
			if !slices.Contains(keys, s.Key) {
				keys = append(keys, s.Key)
			}
		}

		src := settingsSource(cfg, store)
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tVALUE")
		for _, k := range keys {
			v, ok, err := src.Get(cmd.Context(), settingsNamespace, k)
			if err != nil {
				return err
			}
			if !ok {
				v = "(unset)"
			}
			fmt.Fprintf(tw, "%s\t%s\n", k, v)
		}
		return tw.Flush()
	},
}

func init() {
	settingsCmd.PersistentFlags().StringVar(&settingsNamespace, "namespace", widgetbot.Namespace, "settings namespace")
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsUnsetCmd, settingsListCmd)
	rootCmd.AddCommand(settingsCmd)
}
