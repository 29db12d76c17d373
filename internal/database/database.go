// Package database provides DuckDB session management for tpcdsgen.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2" // DuckDB driver
)

// InMemory is the DSN for a transient in-memory DuckDB session.
// The generated benchmark data only exists long enough to be exported,
// so nothing is ever persisted to a database file.
const InMemory = ""

// Manager handles the embedded DuckDB session for one run.
type Manager struct {
	DB *sql.DB

	dsn string
}

// NewManager creates a new session manager for the given DSN.
// Use InMemory for a throwaway in-memory session.
func NewManager(dsn string) *Manager {
	return &Manager{dsn: dsn}
}

// Open establishes the DuckDB session and verifies it with a ping.
func (m *Manager) Open(ctx context.Context) error {
	db, err := sql.Open("duckdb", m.dsn)
	if err != nil {
		return fmt.Errorf("failed to open duckdb session: %w", err)
	}

	// The driver opens lazily; ping forces the session into existence.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping duckdb session: %w", err)
	}

	// COPY runs on whichever pooled connection the stdlib hands out, and
	// dsdgen-created tables must be visible to it. A single connection
	// keeps every statement on the same session.
	db.SetMaxOpenConns(1)

	m.DB = db
	return nil
}

// Close releases the session. Safe to call when Open never succeeded.
func (m *Manager) Close() error {
	if m.DB == nil {
		return nil
	}

	if err := m.DB.Close(); err != nil {
		return fmt.Errorf("failed to close duckdb session: %w", err)
	}
	m.DB = nil
	return nil
}

// Ping verifies the session is alive.
func (m *Manager) Ping(ctx context.Context) error {
	if m.DB == nil {
		return fmt.Errorf("duckdb session is not open")
	}
	if err := m.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("duckdb ping failed: %w", err)
	}
	return nil
}
