// Package workspace prepares the on-disk output directory for a run.
package workspace

import (
	"fmt"
	"os"
)

// Prepare creates the output directory, including any missing parents.
// It is idempotent: a pre-existing directory is never an error.
func Prepare(path string) error {
	if path == "" {
		return fmt.Errorf("output directory path must not be empty")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", path, err)
	}
	return nil
}
