// Package tpcds drives DuckDB's benchmark generation extension.
package tpcds

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/logger"
)

// Generator loads the tpcds extension and populates the session catalog
// with the benchmark schema at a given scale factor.
type Generator struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewGenerator creates a schema generator bound to an open session.
func NewGenerator(db *sql.DB, log *logger.Logger) (*Generator, error) {
	if db == nil {
		return nil, fmt.Errorf("database session is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Generator{db: db, logger: log}, nil
}

// InstallExtension installs and loads the tpcds extension. Failure is
// fatal to the run: it is logged here and returned to the caller.
func (g *Generator) InstallExtension(ctx context.Context) error {
	g.logger.Info("Installing TPC-DS extension...")

	if _, err := g.db.ExecContext(ctx, "INSTALL tpcds"); err != nil {
		g.logger.Errorf("Failed to install TPC-DS extension: %v", err)
		return fmt.Errorf("failed to install tpcds extension: %w", err)
	}
	if _, err := g.db.ExecContext(ctx, "LOAD tpcds"); err != nil {
		g.logger.Errorf("Failed to load TPC-DS extension: %v", err)
		return fmt.Errorf("failed to load tpcds extension: %w", err)
	}

	g.logger.Info("TPC-DS extension loaded")
	return nil
}

// Generate invokes dsdgen for the given scale factor, populating the
// default schema with the benchmark tables. Scale factor zero creates
// the schema without data, which the tables command relies on.
func (g *Generator) Generate(ctx context.Context, scaleFactor int) error {
	if scaleFactor < 0 {
		return fmt.Errorf("scale factor must not be negative, got %d", scaleFactor)
	}

	g.logger.Infof("Generating TPC-DS schema with scale_factor=%d...", scaleFactor)

	query := fmt.Sprintf("CALL dsdgen(sf = %d)", scaleFactor)
	if _, err := g.db.ExecContext(ctx, query); err != nil {
		g.logger.Errorf("TPC-DS generation failed: %v", err)
		return fmt.Errorf("failed to generate tpcds dataset at sf=%d: %w", scaleFactor, err)
	}

	return nil
}

// ListTables enumerates table names in the default schema, sorted
// ascending for a reproducible processing order.
func (g *Generator) ListTables(ctx context.Context) ([]string, error) {
	const query = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'main'
		ORDER BY table_name`

	rows, err := g.db.QueryContext(ctx, query)
	if err != nil {
		g.logger.Errorf("Failed to list TPC-DS tables: %v", err)
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}

	return tables, nil
}
