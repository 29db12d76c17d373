package tpcds

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniorverli/duckdb-tpcds-to-parquet/internal/logger"
)

func newTestGenerator(t *testing.T) (*Generator, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gen, err := NewGenerator(db, logger.NewDefault())
	require.NoError(t, err)

	return gen, mock
}

func TestNewGenerator_NilDB(t *testing.T) {
	_, err := NewGenerator(nil, logger.NewDefault())
	assert.Error(t, err)
}

func TestNewGenerator_DefaultLogger(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gen, err := NewGenerator(db, nil)
	require.NoError(t, err)
	assert.NotNil(t, gen.logger)
}

func TestInstallExtension_Success(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectExec("INSTALL tpcds").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("LOAD tpcds").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, gen.InstallExtension(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstallExtension_InstallFails(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectExec("INSTALL tpcds").WillReturnError(errors.New("offline"))

	err := gen.InstallExtension(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install tpcds extension")
}

func TestInstallExtension_LoadFails(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectExec("INSTALL tpcds").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("LOAD tpcds").WillReturnError(errors.New("not found"))

	err := gen.InstallExtension(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load tpcds extension")
}

func TestGenerate_Success(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectExec(`CALL dsdgen\(sf = 10\)`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, gen.Generate(context.Background(), 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerate_SchemaOnly(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectExec(`CALL dsdgen\(sf = 0\)`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, gen.Generate(context.Background(), 0))
}

func TestGenerate_NegativeScaleFactor(t *testing.T) {
	gen, _ := newTestGenerator(t)

	err := gen.Generate(context.Background(), -1)
	assert.Error(t, err)
}

func TestGenerate_EngineError(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectExec(`CALL dsdgen\(sf = 1\)`).WillReturnError(errors.New("out of memory"))

	err := gen.Generate(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sf=1")
}

func TestListTables_SortedNames(t *testing.T) {
	gen, mock := newTestGenerator(t)

	rows := sqlmock.NewRows([]string{"table_name"}).
		AddRow("call_center").
		AddRow("catalog_sales").
		AddRow("store_sales")
	mock.ExpectQuery("SELECT table_name").WillReturnRows(rows)

	tables, err := gen.ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"call_center", "catalog_sales", "store_sales"}, tables)
}

func TestListTables_Empty(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectQuery("SELECT table_name").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	tables, err := gen.ListTables(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestListTables_QueryFails(t *testing.T) {
	gen, mock := newTestGenerator(t)

	mock.ExpectQuery("SELECT table_name").WillReturnError(errors.New("catalog error"))

	_, err := gen.ListTables(context.Background())
	assert.Error(t, err)
}
