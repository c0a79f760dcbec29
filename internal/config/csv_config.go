// Package config provides configuration management for strlist.
package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rescale/strlist/internal/logging"
	"github.com/rescale/strlist/internal/util/tags"
)

// Config holds the defaults applied to commands when flags are not given.
type Config struct {
	// Split settings
	Delimiter string // one byte splits on that byte, more bytes form a delimiter set
	MaxSplit  int    // negative means unlimited
	Trim      bool   // strip whitespace around tokens
	NonEmpty  bool   // drop empty tokens

	// Uniq settings
	Sort bool // sort before removing duplicates

	// Filter settings
	IncludePatterns []string // glob patterns an entry must match
	ExcludePatterns []string // glob patterns that drop an entry
	Search          []string // substrings an entry must contain

	// Logging
	LogLevel string // "debug", "info", "warn", "error"
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Delimiter: ":",
		MaxSplit:  -1,
		Sort:      true,
		LogLevel:  "info",
	}
}

// Validate checks values that would make commands misbehave.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return errors.New("delimiter must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseBool(value string) bool {
	return strings.ToLower(value) == "true" || value == "1"
}

// LoadConfigCSV loads configuration from a CSV file
// CSV format: key,value pairs
func LoadConfigCSV(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // Return defaults if config doesn't exist
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read config CSV: %w", err)
	}

	// Parse key-value pairs
	for i, record := range records {
		if i == 0 {
			// Skip header row if it looks like a header
			if len(record) >= 2 && strings.ToLower(record[0]) == "key" {
				continue
			}
		}

		if len(record) < 2 {
			continue
		}

		key := strings.TrimSpace(strings.ToLower(record[0]))
		value := strings.TrimSpace(record[1])

		switch key {
		case "delimiter":
			// Not trimmed: whitespace is a valid delimiter.
			cfg.Delimiter = record[1]
		case "max_split":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxSplit = v
			} else {
				log.Warn().Str("value", value).Msg("Ignoring invalid max_split in config file")
			}
		case "trim":
			cfg.Trim = parseBool(value)
		case "non_empty":
			cfg.NonEmpty = parseBool(value)
		case "sort":
			cfg.Sort = parseBool(value)
		case "include_pattern":
			// Semicolon- or comma-separated patterns
			cfg.IncludePatterns = tags.ParseSeparated(value, ";,")
		case "exclude_pattern":
			cfg.ExcludePatterns = tags.ParseSeparated(value, ";,")
		case "search":
			cfg.Search = tags.ParseSeparated(value, ";,")
		case "log_level":
			cfg.LogLevel = value
		default:
			log.Debug().Str("key", key).Msg("Ignoring unknown config key")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfigCSV saves configuration to a CSV file
// CSV format: key,value pairs
func SaveConfigCSV(cfg *Config, path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	// Write header
	if err := writer.Write([]string{"key", "value"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	records := [][]string{
		{"delimiter", cfg.Delimiter},
		{"max_split", strconv.Itoa(cfg.MaxSplit)},
		{"trim", strconv.FormatBool(cfg.Trim)},
		{"non_empty", strconv.FormatBool(cfg.NonEmpty)},
		{"sort", strconv.FormatBool(cfg.Sort)},
		{"include_pattern", strings.Join(cfg.IncludePatterns, ";")},
		{"exclude_pattern", strings.Join(cfg.ExcludePatterns, ";")},
		{"search", strings.Join(cfg.Search, ";")},
		{"log_level", cfg.LogLevel},
	}

	for _, record := range records {
		// Only write non-empty values to keep file clean
		if record[1] == "" {
			continue
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
