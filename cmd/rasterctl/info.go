package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rasterkit/raster"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a raster WKB header and report its metadata",
		Long: `The info command validates the header of a raster WKB file and displays
its metadata: byte order, band count, geotransform, SRID, dimensions, and the
derived extent. Pixel data is not decoded.

Example:
  rasterctl info tile.wkb
  rasterctl info tile.wkb --json
  rasterctl info tile.hex --hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Reading raster: %s\n", path)

	data, err := rawInput(path)
	if err != nil {
		return fmt.Errorf("failed to read raster: %w", err)
	}

	info, err := raster.Inspect(data)
	if err != nil {
		return fmt.Errorf("failed to parse raster header: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	order := "big-endian"
	if info.LittleEndian {
		order = "little-endian"
	}

	printInfo("\nRaster Information:\n")
	printInfo("  File:       %s\n", path)
	printInfo("  Byte order: %s\n", order)
	printInfo("  Version:    %d\n", info.Version)
	printInfo("  Bands:      %d\n", info.Bands)
	printInfo("  Size:       %dx%d pixels\n", info.Width, info.Height)
	printInfo("  SRID:       %d\n", info.SRID)
	printInfo("  Scale:      (%g, %g)\n", info.ScaleX, info.ScaleY)
	printInfo("  Origin:     (%g, %g)\n", info.OriginX, info.OriginY)
	printInfo("  Extent:     [%g, %g] - [%g, %g]\n",
		info.Extent.MinX, info.Extent.MinY, info.Extent.MaxX, info.Extent.MaxY)

	return nil
}
