package cmd

import (
	"fmt"

	"fileset/internal/config"
	"fileset/internal/engine"
	"fileset/internal/logger"
	"fileset/internal/manifest"

	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <config> <otherManifest>",
	Short: "Compare this fileset's manifest against another manifest file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		pathA := config.ManifestPath(args[0])
		pathB := args[1]

		a, err := manifest.Load(pathA)
		if err != nil {
			return err
		}

		b, err := manifest.Load(pathB)
		if err != nil {
			return err
		}

		report := engine.Diff(a, b)

		fmt.Printf("Comparing %s and %s:\n", pathA, pathB)
		fmt.Printf("Files only in %s: %d\n", pathA, len(report.OnlyInA))
		fmt.Printf("Files only in %s: %d\n", pathB, len(report.OnlyInB))
		fmt.Printf("Files with different hashes: %d\n", len(report.Differing))

		printPaths := func(header string, paths []string) {
			if len(paths) == 0 {
				return
			}
			fmt.Printf("\n%s:\n", header)
			for _, p := range paths {
				fmt.Printf("  %s\n", p)
			}
		}

		printPaths("Files only in "+pathA, report.OnlyInA)
		printPaths("Files only in "+pathB, report.OnlyInB)
		printPaths("Files with different hashes", report.Differing)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
