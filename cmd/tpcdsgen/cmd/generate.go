package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/config"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/database"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/exporter"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/logger"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/prompt"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/tpcds"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/verifier"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/workspace"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the TPC-DS dataset and export it to parquet",
	Long: `Generate synthesizes the TPC-DS benchmark dataset inside an in-memory
DuckDB session and exports every table to a compressed parquet file.

The pipeline:
  1. Collect the scale factor (prompt, unless --scale-factor is given)
  2. Create the output directory
  3. Install and load the tpcds extension, run dsdgen
  4. Export each table with COPY ... (FORMAT PARQUET)
  5. Print a summary report with per-table metrics

A failure on one table is recorded and the run continues with the next;
only setup failures abort the run.

Example:
  tpcdsgen generate --scale-factor 1 --output-dir tpcds_data`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load configuration and apply CLI overrides
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o := GetCLIOverrides()
	cfg.ApplyOverrides(o.LogLevel, o.LogFormat, o.ScaleFactor, o.OutputDir, o.Compression, o.SkipVerify)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	sf := cfg.Dataset.ScaleFactor
	if sf == 0 {
		sf, err = collectScaleFactor(cmd, cfg.Dataset.ConfirmThreshold)
		if errors.Is(err, prompt.ErrCancelled) {
			cmd.Println("\nOperation cancelled by user.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to collect scale factor: %w", err)
		}
	}

	// From here on interrupts keep their default disposition: Ctrl+C
	// mid-run terminates the process instead of cascading table failures.
	ctx := context.Background()

	log.Info("Starting TPC-DS data generation")
	log.Infow("Settings",
		"scale_factor", sf,
		"output_dir", cfg.Export.OutputDir,
		"compression", cfg.Export.Compression,
	)

	if err := workspace.Prepare(cfg.Export.OutputDir); err != nil {
		return err
	}
	log.Infof("Directory '%s' created/verified", cfg.Export.OutputDir)

	// Open the engine session; it is released on every exit path
	dbm := database.NewManager(database.InMemory)
	if err := dbm.Open(ctx); err != nil {
		return fmt.Errorf("failed to open engine session: %w", err)
	}
	defer func() {
		dbm.Close()
		log.Info("DuckDB session closed")
	}()

	gen, err := tpcds.NewGenerator(dbm.DB, log)
	if err != nil {
		return err
	}
	if err := gen.InstallExtension(ctx); err != nil {
		return err
	}
	if err := gen.Generate(ctx, sf); err != nil {
		return err
	}

	tables, err := gen.ListTables(ctx)
	if err != nil {
		return err
	}
	log.Infof("Schema generated: %d tables found", len(tables))

	if len(tables) == 0 {
		log.Warn("No tables found in TPC-DS schema")
		return nil
	}

	var v *verifier.Verifier
	if !cfg.Export.SkipVerification {
		v = verifier.New(log)
	}
	exp, err := exporter.New(dbm.DB, cfg.Export, v, log)
	if err != nil {
		return err
	}

	log.Infof("Starting export of %d tables...", len(tables))
	outcomes := exp.ExportAll(ctx, tables)

	stats := exporter.Summarize(outcomes, sf)
	exporter.NewReporter(cmd.OutOrStdout()).Print(stats, outcomes, cfg.Export.OutputDir)

	log.Info("TPC-DS generation completed")
	return nil
}

// collectScaleFactor runs the interactive prompt under a signal-aware
// context. The handler is removed as soon as the prompt finishes, so
// only input collection treats an interrupt as a clean cancellation.
func collectScaleFactor(cmd *cobra.Command, confirmThreshold int) (int, error) {
	ctx, cancel := database.SetupSignalHandler()
	defer cancel()

	collector := prompt.NewCollector(cmd.InOrStdin(), cmd.OutOrStdout(), 1, confirmThreshold)
	return collector.Collect(ctx)
}
