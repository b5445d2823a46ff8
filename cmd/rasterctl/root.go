package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rasterkit/raster"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	hexIn   bool
)

var rootCmd = &cobra.Command{
	Use:   "rasterctl",
	Short: "Inspect and render PostGIS raster WKB streams",
	Long: `rasterctl is a tool for inspecting, validating, and rendering PostGIS
raster WKB files. It decodes 1-band (grayscale) and 3-band (RGB) rasters with
8-bit pixel types and reports the per-band limitations it encounters.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&hexIn, "hex", false, "Treat the input file as hex-encoded (bytea escape output)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}

// loadRaster decodes the raster at path, honoring --hex.
func loadRaster(path string, opts ...raster.Option) (*raster.Raster, error) {
	if hexIn {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return raster.DecodeHex(string(data), opts...)
	}
	return raster.Open(path, opts...)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// rawInput returns the WKB bytes for header-only commands, honoring --hex.
func rawInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !hexIn {
		return data, nil
	}
	s := strings.TrimSpace(string(data))
	s = strings.TrimPrefix(s, `\x`)
	return hex.DecodeString(s)
}
