package cmd

import (
	"fmt"
	"strconv"
	"time"

	"fileset/internal/logger"
	"fileset/internal/repository"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [n]",
	Short: "Show recent sync and check runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		n := 20
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			n = parsed
		}

		repo := repository.NewRunRepository()
		runs, err := repo.GetRecent(n)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("no recorded runs")
			return nil
		}

		fmt.Printf("%-20s %-6s %-6s %-6s %-7s %-7s %-7s %-11s %s\n",
			"WHEN", "CMD", "FOUND", "ADDED", "CHANGED", "EXISTED", "DELETED", "DURATION", "CONFIG")

		for _, run := range runs {
			flags := ""
			if run.Interrupted {
				flags = " (interrupted)"
			}

			fmt.Printf("%-20s %-6s %-6d %-6d %-7d %-7d %-7d %-11s %s%s\n",
				run.RanAt.Format("2006-01-02 15:04:05"), run.Command,
				run.Found, run.Added, run.Changed, run.Existed, run.Deleted,
				run.Duration.Round(time.Millisecond), run.Config, flags)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
