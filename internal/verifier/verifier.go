// Package verifier provides export integrity verification for tpcdsgen.
package verifier

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/logger"
)

// Verifier checks exported parquet files against the row counts recorded
// during export. The parquet footer carries the exact row count, so the
// check never has to scan data pages.
type Verifier struct {
	logger *logger.Logger
}

// New creates a verifier.
func New(log *logger.Logger) *Verifier {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Verifier{logger: log}
}

// CheckRowCount opens the parquet file at path and compares its footer
// row count against want. A mismatch is returned as an error.
func (v *Verifier) CheckRowCount(path string, want int64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open exported file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat exported file: %w", err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return fmt.Errorf("failed to read parquet footer: %w", err)
	}

	got := pf.NumRows()
	if got != want {
		return fmt.Errorf("row count mismatch: exported file has %d rows, table has %d", got, want)
	}

	v.logger.Debugf("Verification passed for %s (%d rows)", path, got)
	return nil
}
