package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/widgetbot/internal/config"
	"github.com/ziadkadry99/widgetbot/internal/dom"
	"github.com/ziadkadry99/widgetbot/internal/injector"
)

// cliHost stands in for the panel's host API object; the injector only
// waits for it to be published.
const cliHost = "widgetbot-cli"

var (
	injectURL     string
	injectVariant string
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Run the client injector against a config endpoint and print the page",
	Long: `Runs the panel-side injector against a live config endpoint using an
in-memory page, then prints the resulting HTML. With --variant crate the
options passed to the Crate constructor are printed as well. Use it to check
what panel users will see for the current settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if injectURL != "" {
			cfg.Injector.ConfigURL = injectURL
		}
		if injectVariant != "" {
			cfg.Injector.Variant = config.Variant(injectVariant)
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		logger := setupLogger(cfg)

		doc := dom.NewDocument()
		host := &injector.Slot[injector.HostAPI]{}
		host.Set(cliHost)

		// Without a browser the vendor bundle never loads; publish a
		// constructor that records the options instead.
		var crateOpts map[string]any
		vendor := &injector.Slot[injector.CrateConstructor]{}
		vendor.Set(func(opts map[string]any) any {
			crateOpts = opts
			return opts
		})

		p := injector.New(injector.Options{
			Variant:      injector.Variant(cfg.Injector.Variant),
			PollInterval: cfg.Injector.PollInterval,
			ReadyTimeout: cfg.Injector.ReadyTimeout,
		}, doc, &injector.HTTPSource{URL: cfg.Injector.ConfigURL, Client: &http.Client{Timeout: cfg.Injector.ReadyTimeout}}, host, vendor, logger)

		if err := p.Run(cmd.Context()); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, doc.String())
		if crateOpts != nil {
			data, err := json.MarshalIndent(crateOpts, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding crate options: %w", err)
			}
			fmt.Fprintf(out, "crate options: %s\n", data)
		}
		return nil
	},
}

func init() {
	injectCmd.Flags().StringVar(&injectURL, "url", "", "config endpoint URL (overrides injector.config_url)")
	injectCmd.Flags().StringVar(&injectVariant, "variant", "", "injector variant: embed or crate (overrides injector.variant)")
	rootCmd.AddCommand(injectCmd)
}
