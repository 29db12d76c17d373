// Package config provides configuration structures and loading for tpcdsgen.
package config

// Config represents the complete application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
	Export  ExportConfig  `yaml:"export" mapstructure:"export"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// DatasetConfig controls the TPC-DS generation step.
type DatasetConfig struct {
	// ScaleFactor is the target dataset size in approximate gigabytes.
	// Zero means "not set": the generate command prompts for it.
	ScaleFactor int `yaml:"scale_factor" mapstructure:"scale_factor"`

	// ConfirmThreshold is the scale factor above which the interactive
	// prompt asks for an explicit confirmation before proceeding.
	ConfirmThreshold int `yaml:"confirm_threshold" mapstructure:"confirm_threshold"`
}

// ExportConfig controls the per-table parquet export.
type ExportConfig struct {
	OutputDir        string `yaml:"output_dir" mapstructure:"output_dir"`
	Compression      string `yaml:"compression" mapstructure:"compression"` // snappy, zstd, gzip, uncompressed
	SkipVerification bool   `yaml:"skip_verification" mapstructure:"skip_verification"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			ScaleFactor:      0,
			ConfirmThreshold: 10000,
		},
		Export: ExportConfig{
			OutputDir:        "tpcds_data",
			Compression:      "snappy",
			SkipVerification: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}
