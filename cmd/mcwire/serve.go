package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/internal/config"
	"github.com/gstoney/mcwire/internal/endpoint"
	"github.com/gstoney/mcwire/internal/logging"
	"github.com/gstoney/mcwire/packet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var configPath, envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer status pings and refuse logins",
		Long: `Listen for Minecraft clients. Server list pings get the configured
status document; login attempts get the configured disconnect message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, envFile)
			if err != nil {
				return err
			}
			logging.Init(cfg.Log, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file with MCWIRE_* overrides")

	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	log := logging.Component("serve")

	favicon, err := loadFavicon(cfg.Server.FaviconFile)
	if err != nil {
		return err
	}

	ep := endpoint.New(endpoint.Config{
		Description:          packet.TextChat(cfg.Server.MOTD),
		VersionName:          cfg.Server.VersionName,
		MaxPlayers:           cfg.Server.MaxPlayers,
		Favicon:              favicon,
		DisconnectMessage:    packet.TextChat(cfg.Server.DisconnectMessage),
		CompressionThreshold: cfg.Server.CompressionThreshold,
	}, logging.Component("endpoint"))

	srv := &mcwire.Server{
		Addr: cfg.Server.Addr,
		Transport: mcwire.TransportConfig{
			MaxPacketLen:       cfg.Transport.MaxPacketLen,
			MaxDecompressedLen: cfg.Transport.MaxDecompressedLen,
		},
		SessionHandler: ep.Serve,
		Logger:         logging.Component("server"),
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srv.Metrics = mcwire.NewMetrics(mcwire.WithRegistry(reg))

		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		hs := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			log.Info().Str("addr", hs.Addr).Str("path", cfg.Metrics.Path).Msg("serving metrics")
			if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return hs.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		err := srv.ListenAndServe(ctx)
		if errors.Is(err, mcwire.ErrServerClosed) {
			return nil
		}
		return err
	})

	err = g.Wait()
	log.Info().Err(err).Msg("stopped")
	return err
}

// loadFavicon returns the status favicon data URI of a PNG file.
func loadFavicon(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("favicon: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}
