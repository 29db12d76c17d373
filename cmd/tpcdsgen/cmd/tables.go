package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/config"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/database"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/logger"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/tpcds"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the benchmark tables that a run would export",
	Long: `Tables generates the TPC-DS schema without any data (dsdgen at scale
factor 0) and prints the table names in export order. Nothing is
written to disk.

Example:
  tpcdsgen tables`,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o := GetCLIOverrides()
	cfg.ApplyOverrides(o.LogLevel, o.LogFormat, 0, "", "", false)

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()

	dbm := database.NewManager(database.InMemory)
	if err := dbm.Open(ctx); err != nil {
		return fmt.Errorf("failed to open engine session: %w", err)
	}
	defer dbm.Close()

	gen, err := tpcds.NewGenerator(dbm.DB, log)
	if err != nil {
		return err
	}
	if err := gen.InstallExtension(ctx); err != nil {
		return err
	}
	// sf=0 builds the catalog without generating rows
	if err := gen.Generate(ctx, 0); err != nil {
		return err
	}

	tables, err := gen.ListTables(ctx)
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		cmd.Println("No tables found in TPC-DS schema")
		return nil
	}

	cmd.Printf("TPC-DS benchmark tables (%d):\n\n", len(tables))
	for i, table := range tables {
		cmd.Printf("%3d. %s\n", i+1, table)
	}

	return nil
}
