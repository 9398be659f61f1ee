package cmd

import (
	"os"

	"fileset/internal/db"
	"fileset/internal/logger"
	"fileset/internal/settings"

	"github.com/spf13/cobra"
)

var (
	cfg   *settings.Settings
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "fileset",
	Short: "Keep track of big datasets of files",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger.Init(debug)

		var err error
		cfg, err = settings.Load()
		if err != nil {
			return err
		}

		// Read-only commands never touch the run history DB.
		readOnlyCmds := map[string]bool{
			"status": true, "diff": true,
		}
		if !readOnlyCmds[cmd.Name()] {
			if err := db.Init(cfg.DBPath); err != nil {
				return err
			}
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
}
