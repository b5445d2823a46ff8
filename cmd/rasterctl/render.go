package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRenderCmd())
}

func newRenderCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Decode a raster WKB file and write it as PNG",
		Long: `The render command decodes a raster WKB file and writes the pixel data
to a PNG image. Bands that cannot be decoded (off-database or non-8-bit pixel
types) leave their channels opaque white.

Example:
  rasterctl render tile.wkb -o tile.png
  rasterctl render tile.hex --hex -o tile.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output PNG path (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runRender(path, outPath string) error {
	printVerbose("Decoding raster: %s\n", path)

	r, err := loadRaster(path)
	if err != nil {
		return fmt.Errorf("failed to decode raster: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, r.Image()); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	printInfo("Wrote %dx%d PNG to %s\n", r.Width, r.Height, outPath)
	return nil
}
