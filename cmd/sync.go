package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fileset/internal/config"
	"fileset/internal/engine"
	"fileset/internal/logger"
	"fileset/internal/model"
	"fileset/internal/repository"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncCmd = &cobra.Command{
	Use:   "sync <config> [full]",
	Short: "Sync the manifest with the current filesystem state",
	Long: "Walks every configured mapping and reconciles the manifest. " +
		"Fast mode skips re-hashing files whose size and mtime are unchanged; " +
		"pass 'full' to re-hash everything.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		configPath := args[0]
		full := len(args) == 2 && args[1] == "full"

		fsCfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()

		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Sync'ing files"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("files"))

		eng := engine.New(fsCfg,
			engine.WithEvents(printEvent),
			engine.WithProgress(func() { _ = bar.Add(1) }))

		fmt.Printf("fileset %s syncing ...\n", configPath)

		start := time.Now()
		report, err := eng.Sync(ctx, full)
		_ = bar.Finish()
		fmt.Println()
		if err != nil {
			return err
		}

		repo := repository.NewRunRepository()
		if err := repo.SaveSync(configPath, full, report, time.Since(start)); err != nil {
			logger.Log.Warn("failed to save run history",
				zap.Error(err))
		}

		if report.Interrupted {
			fmt.Println("Operation interrupted. State saved.")
		}

		fmt.Printf("%d Files found\n", report.Found)
		fmt.Printf("%d Files added\n", report.Added)
		fmt.Printf("%d Files already existed\n", report.Existed)
		fmt.Printf("%d Files changed\n", report.Changed)
		fmt.Printf("%d Files deleted\n", report.Deleted)

		return nil
	},
}

func printEvent(ev model.FileEvent) {
	switch ev.Type {
	case model.EventAdded:
		fmt.Printf("%s %s [ADDED]\n", ev.Hash, ev.VirtualPath)
	case model.EventChanged:
		fmt.Printf("%s %s [CHANGED!]\n", ev.Hash, ev.VirtualPath)
	case model.EventDeleted:
		fmt.Printf("%s [DELETED]\n", ev.VirtualPath)
	case model.EventMissing:
		fmt.Printf("%s [MISSING!]\n", ev.VirtualPath)
	case model.EventMismatch:
		fmt.Printf("%s %s [CHANGED!]\n", ev.Hash, ev.VirtualPath)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
