package config

import (
	"fmt"
	"os"
	"path/filepath"

	"bulkrename/internal/fsutil"
	"bulkrename/internal/pattern"
	"bulkrename/pkg/types"

	"gopkg.in/yaml.v3"
)

// Default values for a fresh configuration.
const (
	DefaultExtensions = ".jpg, .jpeg, .png, .gif, .bmp, .tiff, .raw"
	DefaultStart      = 1
	DefaultPadding    = 3
	DefaultDateFormat = "%Y-%m-%d"
	DefaultLogFile    = "rename.log"
)

// Numbering limits.
const (
	MinStart   = 0
	MaxStart   = 999999
	MinPadding = 1
	MaxPadding = 10
)

// Operation is an immutable snapshot of all transform parameters for one
// preview/execute cycle. Exactly one mode is active: standard (the fixed
// transform order) or pattern (UsePattern true, rendered via Pattern).
type Operation struct {
	Prefix string `yaml:"prefix"` // Prefix prepended to each name
	Suffix string `yaml:"suffix"` // Suffix appended to each name

	Numbering struct {
		Enabled bool `yaml:"enabled"` // Add sequential numbers
		Start   int  `yaml:"start"`   // First number in the sequence
		Padding int  `yaml:"padding"` // Zero-pad width (1-10)
	} `yaml:"numbering"`

	Replace struct {
		Find          string `yaml:"find"`           // Text to find (literal, never a regex)
		With          string `yaml:"with"`           // Replacement text
		CaseSensitive bool   `yaml:"case_sensitive"` // Case-sensitive matching
	} `yaml:"replace"`

	Date struct {
		Enabled bool             `yaml:"enabled"` // Append a date stamp
		Source  types.DateSource `yaml:"source"`  // creation | modification | exif
		Format  string           `yaml:"format"`  // strftime-style format string
	} `yaml:"date"`

	UsePattern bool     `yaml:"use_pattern"` // Pattern mode instead of the standard order
	Pattern    []string `yaml:"pattern"`     // Pattern elements in source form
}

// Validate checks the operation parameters and returns human-readable
// messages for everything wrong with them.
func (o Operation) Validate() []string {
	var errs []string

	if o.Numbering.Enabled {
		if o.Numbering.Start < MinStart || o.Numbering.Start > MaxStart {
			errs = append(errs, fmt.Sprintf("Start number: value must be between %d and %d", MinStart, MaxStart))
		}
		if o.Numbering.Padding < MinPadding || o.Numbering.Padding > MaxPadding {
			errs = append(errs, fmt.Sprintf("Padding: value must be between %d and %d", MinPadding, MaxPadding))
		}
	}

	if o.Date.Enabled {
		if !o.Date.Source.Valid() {
			errs = append(errs, fmt.Sprintf("Date source: unknown source %q", o.Date.Source))
		}
		if !fsutil.ValidDateFormat(o.Date.Format) {
			errs = append(errs, fmt.Sprintf("Date format: invalid format %q", o.Date.Format))
		}
	}

	if o.UsePattern {
		seq, err := pattern.FromList(o.Pattern)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Pattern: %v", err))
		} else if err := seq.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("Pattern: %v", err))
		}
	}

	return errs
}

// IsConfigured reports whether any transform is active at all. A
// completely blank operation stages no renames.
func (o Operation) IsConfigured() bool {
	return o.Prefix != "" ||
		o.Suffix != "" ||
		o.Numbering.Enabled ||
		o.Replace.Find != "" ||
		o.Date.Enabled ||
		o.UsePattern
}

// Config is the application configuration: where to scan and what
// operation to stage. The presentation layer fills it in; the engine
// consumes it.
type Config struct {
	Scan struct {
		Directory  string `yaml:"directory"`  // Root directory to load files from
		Extensions string `yaml:"extensions"` // Comma-separated extension filter
		Recursive  bool   `yaml:"recursive"`  // Include subdirectories
		Match      string `yaml:"match"`      // Optional glob applied to base names
	} `yaml:"scan"`

	Operation Operation `yaml:"operation"`

	Settings struct {
		LogFile string `yaml:"log_file"` // Append-only audit log path
		Debug   bool   `yaml:"debug"`    // Verbose logging
	} `yaml:"settings"`
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.Scan.Extensions = DefaultExtensions
	cfg.Operation.Numbering.Start = DefaultStart
	cfg.Operation.Numbering.Padding = DefaultPadding
	cfg.Operation.Replace.CaseSensitive = true
	cfg.Operation.Date.Source = types.DateCreation
	cfg.Operation.Date.Format = DefaultDateFormat
	cfg.Operation.Pattern = pattern.Default().List()
	cfg.Settings.LogFile = DefaultLogFile
	return cfg
}

// LoadConfigFile loads configuration from path, applied over the
// defaults; absent fields keep their default values. A missing file
// returns the defaults unchanged.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to path, creating parent
// directories if needed.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := New()
	cfg.Scan.Extensions = ".txt, .jpg"
	cfg.Operation.Prefix = "test_"
	cfg.Operation.Numbering.Enabled = true
	return cfg
}
