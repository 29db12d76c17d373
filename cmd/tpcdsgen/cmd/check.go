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

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the engine and the tpcds extension are usable",
	Long: `Check opens an in-memory DuckDB session and installs and loads the
tpcds extension, without generating any data. Use it to confirm the
environment before starting a long run (the extension download needs
network access on first use).

Example:
  tpcdsgen check`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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
		cmd.Println("❌ Engine session could not be opened")
		return fmt.Errorf("failed to open engine session: %w", err)
	}
	defer dbm.Close()
	cmd.Println("✅ Engine session opened")

	gen, err := tpcds.NewGenerator(dbm.DB, log)
	if err != nil {
		return err
	}
	if err := gen.InstallExtension(ctx); err != nil {
		cmd.Println("❌ TPC-DS extension unavailable")
		return err
	}
	cmd.Println("✅ TPC-DS extension installed and loaded")

	cmd.Println("\nAll checks passed")
	return nil
}
