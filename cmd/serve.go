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
	"fileset/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve <config>",
	Short: "Serve fileset status over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		fsCfg, err := config.Load(args[0])
		if err != nil {
			return err
		}

		eng := engine.New(fsCfg)

		srv := server.New(eng, fsCfg.ManifestPath(), fsCfg.Algo, cfg.ServePort)
		srv.Start()

		logger.Log.Info("fileset server started",
			zap.String("config", args[0]),
			zap.Int("port", cfg.ServePort))

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		sig := <-sigCh
		logger.Log.Info("shutting down",
			zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Stop(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
