// Package sqlutil provides SQL quoting helpers for the DuckDB query surface.
package sqlutil

import (
	"regexp"
	"strings"
)

// QuoteIdentifier quotes a DuckDB identifier (table name, column name) with
// double quotes. It escapes any embedded double quotes by doubling them.
// Example: "my_table" -> "\"my_table\""
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteLiteral quotes a string value as a single-quoted SQL literal,
// escaping embedded single quotes by doubling them. Used for file paths
// and codec names inside COPY statements, which cannot be bound as
// placeholder parameters.
func QuoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// validIdentifierRegex matches identifier characters we accept.
// DuckDB allows almost anything inside quoted identifiers, but the
// benchmark table names are all lowercase with underscores, so we
// restrict to alphanumeric and underscore.
var validIdentifierRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier checks if a name is an acceptable identifier.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}

// QuoteIdentifierSafe quotes an identifier after validating it.
// Returns an error if the identifier contains invalid characters.
// Use this for identifiers read back from the engine catalog.
func QuoteIdentifierSafe(name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return QuoteIdentifier(name), nil
}

// InvalidIdentifierError is returned when an identifier contains invalid characters.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (must contain only alphanumeric characters and underscores)"
}
