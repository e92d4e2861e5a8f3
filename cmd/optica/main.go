package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/config"
	"github.com/BruksfildServices01/optic-manager/internal/infra/backend"
	"github.com/BruksfildServices01/optic-manager/internal/logging"
	"github.com/BruksfildServices01/optic-manager/internal/notify"
	"github.com/BruksfildServices01/optic-manager/internal/store"
	"github.com/BruksfildServices01/optic-manager/internal/timezone"
)

// app holds what every command needs once PersistentPreRunE has run.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	clock    timezone.Clock
	closeFn  func() error
	notifier *notify.Notifier
}

var current = &app{}

var rootCmd = &cobra.Command{
	Use:           "optica",
	Short:         "Front desk manager for an optical shop",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg)
		if err != nil {
			return err
		}

		b, closeFn, err := backend.Open(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		s := store.New(b, logger)
		if err := s.Load(cmd.Context()); err != nil {
			_ = closeFn()
			return fmt.Errorf("load data: %w", err)
		}

		current.cfg = cfg
		current.logger = logger
		current.store = s
		current.clock = timezone.SystemClock(cfg.ShopTimezone)
		current.closeFn = closeFn
		current.notifier = notify.New(cfg.NotifyDelay, notify.TerminalSink{Out: cmd.ErrOrStderr()})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current.logger != nil {
			_ = current.logger.Sync()
		}
		if current.closeFn != nil {
			return current.closeFn()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		serveCmd,
		statsCmd,
		reportCmd,
		invoiceCmd,
		patientsCmd,
		messagesCmd,
	)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
