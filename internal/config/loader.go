package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path. An empty path
// returns the defaults unchanged, so the tool runs without any config
// file at all. YAML files are supported, with environment variable
// substitution applied to path-like values.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	cfg.Export.OutputDir = expandEnvVar(cfg.Export.OutputDir)
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, scaleFactor int, outputDir, compression string, skipVerify bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	// Zero means prompt interactively; negative values are applied so
	// Validate rejects them instead of silently falling back to the prompt.
	if scaleFactor != 0 {
		c.Dataset.ScaleFactor = scaleFactor
	}
	if outputDir != "" {
		c.Export.OutputDir = outputDir
	}
	if compression != "" {
		c.Export.Compression = compression
	}
	if skipVerify {
		c.Export.SkipVerification = true
	}
}

// Validate checks that the effective configuration is usable.
func (c *Config) Validate() error {
	if c.Dataset.ScaleFactor < 0 {
		return fmt.Errorf("scale factor must be positive, got %d", c.Dataset.ScaleFactor)
	}
	if c.Dataset.ConfirmThreshold < 1 {
		return fmt.Errorf("confirm threshold must be at least 1, got %d", c.Dataset.ConfirmThreshold)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.Export.Compression == "" {
		return fmt.Errorf("compression codec must not be empty")
	}
	return nil
}
