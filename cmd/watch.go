package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fileset/internal/config"
	"fileset/internal/engine"
	"fileset/internal/logger"
	"fileset/internal/repository"
	"fileset/internal/watcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch <config>",
	Short: "Keep the manifest in sync as mapped roots change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		configPath := args[0]

		fsCfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()

		eng := engine.New(fsCfg, engine.WithEvents(printEvent))
		repo := repository.NewRunRepository()

		runSync := func() {
			start := time.Now()
			report, err := eng.Sync(ctx, false)
			if err != nil {
				logger.Log.Error("sync failed", zap.Error(err))
				return
			}

			if err := repo.SaveSync(configPath, false, report, time.Since(start)); err != nil {
				logger.Log.Warn("failed to save run history", zap.Error(err))
			}

			logger.Log.Info("sync completed",
				zap.Int("found", report.Found),
				zap.Int("added", report.Added),
				zap.Int("changed", report.Changed),
				zap.Int("deleted", report.Deleted),
				zap.Bool("interrupted", report.Interrupted))
		}

		runSync()

		w, err := watcher.New(cfg.BufferSize)
		if err != nil {
			return err
		}

		if err := w.Watch(fsCfg.Mappings); err != nil {
			return err
		}

		triggers := watcher.Debounce(w.Events(),
			time.Duration(cfg.DebounceMs)*time.Millisecond)

		logger.Log.Info("watch started",
			zap.String("config", configPath),
			zap.Int("mappings", len(fsCfg.Mappings)))

		for {
			select {
			case <-ctx.Done():
				w.Stop()
				logger.Log.Info("shutting down")
				return nil

			case _, ok := <-triggers:
				if !ok {
					return nil
				}
				runSync()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
