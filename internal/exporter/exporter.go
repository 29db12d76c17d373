// Package exporter writes generated benchmark tables to compressed
// parquet files and aggregates per-table outcomes into a run report.
package exporter

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/config"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/logger"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/sqlutil"
	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/verifier"
)

// Outcome is the per-table result of an export attempt: either success
// metrics or an error message, never both. Outcomes are immutable once
// created and consumed only by the reporter.
type Outcome struct {
	Table    string
	Records  int64
	SizeMB   float64
	Duration time.Duration
	Error    string
}

// Failed reports whether the export attempt ended in an error.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

// fileSize reads the size of an exported file in bytes. Package variable
// so tests can run the export path without a real engine writing files.
var fileSize = func(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Exporter exports tables from an open session to parquet files.
type Exporter struct {
	db          *sql.DB
	outputDir   string
	compression string
	verifier    *verifier.Verifier // nil disables read-back verification
	logger      *logger.Logger
}

// New creates an exporter. A nil verifier skips read-back verification.
func New(db *sql.DB, cfg config.ExportConfig, v *verifier.Verifier, log *logger.Logger) (*Exporter, error) {
	if db == nil {
		return nil, fmt.Errorf("database session is nil")
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output directory must not be empty")
	}
	if cfg.Compression == "" {
		return nil, fmt.Errorf("compression codec must not be empty")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Exporter{
		db:          db,
		outputDir:   cfg.OutputDir,
		compression: cfg.Compression,
		verifier:    v,
		logger:      log,
	}, nil
}

// DestinationPath returns the parquet file path for a table.
func (e *Exporter) DestinationPath(table string) string {
	return filepath.Join(e.outputDir, table+".parquet")
}

// Export writes one table to its parquet file and returns the outcome.
// Any failure is caught here and recorded in the outcome; it never
// aborts the overall run. Existing files are silently overwritten.
func (e *Exporter) Export(ctx context.Context, table string) Outcome {
	quoted, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return e.fail(table, err)
	}

	path := e.DestinationPath(table)

	var records int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoted)
	if err := e.db.QueryRowContext(ctx, countQuery).Scan(&records); err != nil {
		return e.fail(table, fmt.Errorf("failed to count rows: %w", err))
	}

	e.logger.Infof("Exporting '%s' (%d records)...", table, records)

	copyQuery := fmt.Sprintf("COPY %s TO %s (FORMAT PARQUET, COMPRESSION %s)",
		quoted, sqlutil.QuoteLiteral(path), sqlutil.QuoteLiteral(e.compression))

	start := time.Now()
	if _, err := e.db.ExecContext(ctx, copyQuery); err != nil {
		return e.fail(table, fmt.Errorf("export failed: %w", err))
	}
	duration := time.Since(start)

	size, err := fileSize(path)
	if err != nil {
		return e.fail(table, fmt.Errorf("failed to read exported file size: %w", err))
	}
	sizeMB := float64(size) / 1024 / 1024

	if e.verifier != nil {
		if err := e.verifier.CheckRowCount(path, records); err != nil {
			return e.fail(table, fmt.Errorf("verification failed: %w", err))
		}
	}

	e.logger.Infof("'%s' exported: %.2f MB in %.2fs (%d records)",
		table, sizeMB, duration.Seconds(), records)

	return Outcome{
		Table:    table,
		Records:  records,
		SizeMB:   sizeMB,
		Duration: duration,
	}
}

// ExportAll runs Export for each table in order, logging progress, and
// returns all outcomes. Per-table failures are recorded and the loop
// continues with the next table.
func (e *Exporter) ExportAll(ctx context.Context, tables []string) []Outcome {
	outcomes := make([]Outcome, 0, len(tables))

	for i, table := range tables {
		e.logger.Infof("[%d/%d] Processing '%s'...", i+1, len(tables), table)
		outcomes = append(outcomes, e.Export(ctx, table))
	}

	return outcomes
}

// fail logs an export failure and converts it into an error outcome.
func (e *Exporter) fail(table string, err error) Outcome {
	e.logger.Errorf("Error exporting '%s': %v", table, err)
	return Outcome{Table: table, Error: err.Error()}
}
