package cmd

import (
	"fmt"

	"fileset/internal/config"
	"fileset/internal/engine"
	"fileset/internal/logger"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <config>",
	Short: "Report added/modified/deleted counts without syncing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		fsCfg, err := config.Load(args[0])
		if err != nil {
			return err
		}

		report, err := engine.New(fsCfg).Status()
		if err != nil {
			return err
		}

		fmt.Printf("Status report for %s:\n", args[0])
		fmt.Printf("Total files in database: %d\n", report.Total)
		fmt.Printf("Total files in filesystem: %d\n", report.Scanned)
		fmt.Printf("Deleted files: %d\n", report.Deleted)
		fmt.Printf("Added files: %d\n", report.Added)
		fmt.Printf("Modified files: %d\n", report.Modified)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
