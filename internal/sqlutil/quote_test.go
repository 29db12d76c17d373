package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple table name",
			input:    "store_sales",
			expected: `"store_sales"`,
		},
		{
			name:     "Table with underscore",
			input:    "catalog_returns",
			expected: `"catalog_returns"`,
		},
		{
			name:     "Mixed case",
			input:    "MyTable",
			expected: `"MyTable"`,
		},
		{
			name:     "Numeric characters",
			input:    "table123",
			expected: `"table123"`,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: `""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := QuoteIdentifier(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQuoteIdentifier_EscapeQuotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Single double quote",
			input:    `my"table`,
			expected: `"my""table"`,
		},
		{
			name:     "Multiple double quotes",
			input:    `a"b"c`,
			expected: `"a""b""c"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := QuoteIdentifier(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain path",
			input:    "tpcds_data/store_sales.parquet",
			expected: "'tpcds_data/store_sales.parquet'",
		},
		{
			name:     "Path with single quote",
			input:    "o'brien/data.parquet",
			expected: "'o''brien/data.parquet'",
		},
		{
			name:     "Codec name",
			input:    "snappy",
			expected: "'snappy'",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := QuoteLiteral(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("web_sales"))
	assert.True(t, IsValidIdentifier("table123"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("drop table;"))
	assert.False(t, IsValidIdentifier(`a"b`))
	assert.False(t, IsValidIdentifier("a b"))
}

func TestQuoteIdentifierSafe(t *testing.T) {
	quoted, err := QuoteIdentifierSafe("date_dim")
	require.NoError(t, err)
	assert.Equal(t, `"date_dim"`, quoted)

	_, err = QuoteIdentifierSafe("bad name")
	require.Error(t, err)

	var invalidErr *InvalidIdentifierError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "bad name", invalidErr.Name)
	assert.Contains(t, err.Error(), "invalid identifier")
}
