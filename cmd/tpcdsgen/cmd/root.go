package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	scaleFactor int
	outputDir   string
	compression string
	skipVerify  bool
)

var rootCmd = &cobra.Command{
	Use:   "tpcdsgen",
	Short: "TPC-DS Dataset Generator & Parquet Exporter",
	Long: `A CLI tool that drives an embedded DuckDB engine to synthesize the
TPC-DS decision-support benchmark dataset at a chosen scale factor and
exports every generated table to compressed parquet files.

Features:
  - Interactive scale factor prompt with sanity confirmation
  - In-memory DuckDB session via the tpcds extension (dsdgen)
  - Per-table compressed parquet export with size and timing metrics
  - Parquet footer row-count verification after each export
  - Final summary report with per-table breakdown`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag (optional; defaults apply when omitted)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Run overrides
	rootCmd.PersistentFlags().IntVarP(&scaleFactor, "scale-factor", "s", 0,
		"Scale factor in approximate GB (0 = prompt interactively)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "",
		"Override output directory for parquet files")
	rootCmd.PersistentFlags().StringVar(&compression, "compression", "",
		"Override parquet compression codec (snappy, zstd, gzip, uncompressed)")

	// Safety overrides
	rootCmd.PersistentFlags().BoolVar(&skipVerify, "skip-verify", false,
		"Skip parquet row-count verification after each export")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel    string
	LogFormat   string
	ScaleFactor int
	OutputDir   string
	Compression string
	SkipVerify  bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		ScaleFactor: scaleFactor,
		OutputDir:   outputDir,
		Compression: compression,
		SkipVerify:  skipVerify,
	}
}
