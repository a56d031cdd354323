package cli

import (
	"fmt"
	"os"

	"github.com/kvdoc/document/internal/codec"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds all configuration options for docid
type Config struct {
	// Wire format of documents read by inspect
	Format string
	// Log output format: "json" (zerolog) or "text" (slog)
	LogFormat string
	// Log file path; logs go to stderr when empty
	LogFile string
	// Enable debug logging
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Format:    GetEnvOrDefault("DOCID_FORMAT", string(codec.FormatJSON)),
		LogFormat: GetEnvOrDefault("DOCID_LOG_FORMAT", LogFormatJSON),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch codec.Format(c.Format) {
	case codec.FormatJSON, codec.FormatCBOR:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", codec.FormatJSON, codec.FormatCBOR, c.Format)
	}
	switch c.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("log format must be %q or %q, got %q", LogFormatJSON, LogFormatText, c.LogFormat)
	}
	return nil
}

func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
