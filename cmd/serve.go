package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meridianvc/dealscope/internal/directory"
	"github.com/meridianvc/dealscope/internal/enrich"
	"github.com/meridianvc/dealscope/internal/scrape"
	"github.com/meridianvc/dealscope/internal/server"
	"github.com/meridianvc/dealscope/pkg/anthropic"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := []scrape.Option{
			scrape.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs) * time.Second),
		}
		if cfg.Scrape.UserAgent != "" {
			opts = append(opts, scrape.WithUserAgent(cfg.Scrape.UserAgent))
		}
		fetcher := scrape.NewTextFetcher(opts...)

		enricher := enrich.New(
			fetcher,
			anthropic.NewClient(cfg.Anthropic.Key),
			enrich.NewMemoryCache(),
			cfg.Anthropic,
		)

		srv := server.New(fetcher, enricher, directory.Seeded(), cfg.Server.AllowedOrigins)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		httpSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: srv.Handler(),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = httpSrv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
