package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/widgetbot/internal/server"
	"github.com/ziadkadry99/widgetbot/internal/widgetbot"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the public WidgetBot HTTP server",
	Long: `Starts the HTTP server exposing the unauthenticated WidgetBot routes:
  ` + widgetbot.ConfigRouteName + `  GET ` + widgetbot.ConfigPath + `  JSON configuration
  ` + widgetbot.EmbedRouteName + `   GET ` + widgetbot.EmbedPath + `              iframe-able HTML embed
  script            GET ` + widgetbot.ScriptPath + `       panel injector script`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
		}
		logger := setupLogger(cfg)

		database, store, err := openSettings(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		resolver := widgetbot.NewResolver(settingsSource(cfg, store))
		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAllOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		}, logger, resolver)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info().
			Str("version", Version).
			Int("port", cfg.Server.Port).
			Str("database", database.Path()).
			Msg("widgetbot server starting")

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
