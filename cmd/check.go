package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"fileset/internal/config"
	"fileset/internal/engine"
	"fileset/internal/logger"
	"fileset/internal/repository"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check <config> [percentage]",
	Short: "Re-hash a fraction of tracked files, oldest content first",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		percentage := 100.0
		if len(args) == 2 {
			var err error
			percentage, err = strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", args[1], err)
			}
		}

		fsCfg, err := config.Load(args[0])
		if err != nil {
			return err
		}

		status, err := engine.New(fsCfg).Status()
		if err != nil {
			return err
		}

		fmt.Printf("Status report for %s:\n", args[0])
		fmt.Printf("Total files in database: %d\n", status.Total)
		fmt.Printf("Total files in filesystem: %d\n", status.Scanned)
		fmt.Printf("Deleted files: %d\n", status.Deleted)
		fmt.Printf("Added files: %d\n", status.Added)
		fmt.Printf("Modified files: %d\n\n", status.Modified)

		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()

		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Checking files"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("files"))

		eng := engine.New(fsCfg,
			engine.WithWorkers(cfg.Workers),
			engine.WithEvents(printEvent),
			engine.WithProgress(func() { _ = bar.Add(1) }))

		start := time.Now()
		report, err := eng.Check(ctx, percentage)
		_ = bar.Finish()
		fmt.Println()
		if err != nil {
			return err
		}

		repo := repository.NewRunRepository()
		if err := repo.SaveCheck(args[0], report, time.Since(start)); err != nil {
			logger.Log.Warn("failed to save run history",
				zap.Error(err))
		}

		fmt.Printf("Checked %d files: %d mismatched, %d missing\n",
			report.Selected, len(report.Mismatches), len(report.Missing))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
