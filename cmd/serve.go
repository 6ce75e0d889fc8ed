package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/k1LoW/errors"
	"github.com/rook-computer/postermaker/internal/config"
	"github.com/rook-computer/postermaker/internal/logging"
	"github.com/rook-computer/postermaker/internal/state"
	"github.com/rook-computer/postermaker/internal/web"
	"github.com/spf13/cobra"
)

var (
	listen  string
	devMode bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the poster form and HTTP API",
	Long:  `serve the poster form at / and the HTTP API under /api/v1/. The config file is reloaded when it changes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.WithStack(err)
		}()
		cfg, path, logger, closeLog, err := setup()
		if err != nil {
			return err
		}
		defer closeLog()

		if cmd.Flags().Changed("listen") {
			cfg.Listen = listen
		}
		if cmd.Flags().Changed("dev") {
			cfg.Dev = devMode
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := state.NewStore(state.State{Config: *cfg, Composer: newComposer(cfg, logger), Source: path})
		if path != "" {
			watchConfig(ctx, path, store, logging.Component(logger, "config"))
		}

		server := web.NewHTTPServer(web.ServerConfig{ListenAddr: cfg.Listen, DevMode: cfg.Dev})
		server.Logger = logging.Component(logger, "http")
		server.Handler = web.NewDefaultMux(store, logger)
		if err := server.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()
		logger.Info("shutting down")
		return server.Stop()
	},
}

// watchConfig swaps in a new composer whenever the config file changes.
// Listen address and dev mode changes need a restart.
func watchConfig(ctx context.Context, path string, store *state.Store, logger *slog.Logger) {
	onChange := func(cfg *config.Config) {
		if err := cfg.ApplyEnv(); err != nil {
			logger.Error("config reload rejected", slog.String("error", err.Error()))
			return
		}
		store.Replace(*cfg, newComposer(cfg, logger))
		logger.Info("config reloaded", slog.String("path", path))
	}
	onError := func(err error) {
		logger.Error("config watch", slog.String("error", err.Error()))
	}
	if err := config.Watch(ctx, path, onChange, onError); err != nil {
		logger.Warn("config watch disabled", slog.String("error", err.Error()))
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&listen, "listen", "l", config.DefaultListenAddr, "http listen address; also configurable via "+config.EnvListenAddr)
	serveCmd.Flags().BoolVarP(&devMode, "dev", "", false, "enable permissive CORS; also configurable via "+config.EnvDevMode)
}
