package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rasterkit/raster"
)

func init() {
	rootCmd.AddCommand(newDiagnoseCmd())
}

func newDiagnoseCmd() *cobra.Command {
	var failOnIssues bool

	cmd := &cobra.Command{
		Use:   "diagnose <file>",
		Short: "Decode a raster WKB file and report per-band limitations",
		Long: `The diagnose command decodes a raster WKB file with a diagnostic
collector attached and prints every non-fatal condition encountered:
off-database bands, unsupported pixel types, and nodata values that were
detected but not applied.

Example:
  rasterctl diagnose tile.wkb
  rasterctl diagnose tile.wkb --json
  rasterctl diagnose tile.wkb --fail-on-issues`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(args[0], failOnIssues)
		},
	}
	cmd.Flags().BoolVar(&failOnIssues, "fail-on-issues", false, "Exit nonzero when any diagnostic is recorded")
	return cmd
}

func runDiagnose(path string, failOnIssues bool) error {
	printVerbose("Decoding raster: %s\n", path)

	col := raster.NewCollector()
	if _, err := loadRaster(path, raster.WithSink(col)); err != nil {
		return fmt.Errorf("failed to decode raster: %w", err)
	}

	rep := col.Report()

	if jsonOut {
		out, err := rep.FormatJSON()
		if err != nil {
			return err
		}
		printInfo("%s\n", out)
	} else {
		printInfo("%s", rep.FormatText())
	}

	if failOnIssues && rep.HasAnyIssues() {
		return fmt.Errorf("%d diagnostic(s) recorded", len(rep.Diagnostics))
	}
	return nil
}
