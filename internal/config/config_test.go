package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0, cfg.Dataset.ScaleFactor)
	assert.Equal(t, 10000, cfg.Dataset.ConfirmThreshold)
	assert.Equal(t, "tpcds_data", cfg.Export.OutputDir)
	assert.Equal(t, "snappy", cfg.Export.Compression)
	assert.False(t, cfg.Export.SkipVerification)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeScaleFactor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dataset.ScaleFactor = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dataset.ConfirmThreshold = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.OutputDir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyCompression(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.Compression = ""
	assert.Error(t, cfg.Validate())
}
