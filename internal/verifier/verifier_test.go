package verifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/logger"
)

type testRow struct {
	ID   int64  `parquet:"id"`
	Name string `parquet:"name"`
}

// writeParquet writes n rows to a parquet file and returns its path.
func writeParquet(t *testing.T, n int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rows.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := parquet.NewGenericWriter[testRow](f)
	rows := make([]testRow, n)
	for i := range rows {
		rows[i] = testRow{ID: int64(i), Name: "row"}
	}
	if n > 0 {
		_, err = w.Write(rows)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	return path
}

func TestCheckRowCount_Match(t *testing.T) {
	path := writeParquet(t, 5)

	v := New(logger.NewDefault())
	assert.NoError(t, v.CheckRowCount(path, 5))
}

func TestCheckRowCount_EmptyFile(t *testing.T) {
	path := writeParquet(t, 0)

	v := New(nil)
	assert.NoError(t, v.CheckRowCount(path, 0))
}

func TestCheckRowCount_Mismatch(t *testing.T) {
	path := writeParquet(t, 5)

	v := New(nil)
	err := v.CheckRowCount(path, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row count mismatch")
}

func TestCheckRowCount_MissingFile(t *testing.T) {
	v := New(nil)
	err := v.CheckRowCount(filepath.Join(t.TempDir(), "absent.parquet"), 1)
	assert.Error(t, err)
}

func TestCheckRowCount_NotParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.parquet")
	require.NoError(t, os.WriteFile(path, []byte("not a parquet file"), 0o644))

	v := New(nil)
	err := v.CheckRowCount(path, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet")
}
