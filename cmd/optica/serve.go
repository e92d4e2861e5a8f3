package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/render"
	"github.com/BruksfildServices01/optic-manager/internal/routes"
	"github.com/BruksfildServices01/optic-manager/internal/whatsapp"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and web screens",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := current.cfg, current.logger

		renderer, err := render.New(cfg.CurrencySymbol)
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())

		routes.RegisterRoutes(r, routes.Deps{
			Config:   cfg,
			Store:    current.store,
			Logger:   logger,
			Notifier: notify.New(cfg.NotifyDelay, notify.ZapSink{Logger: logger.Named("notify")}),
			Opener:   whatsapp.LogOpener{Logger: logger},
			Clock:    current.clock,
			Renderer: renderer,
		})

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("storage", cfg.StorageDriver))
			errCh <- srv.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}
