// =============================================================================
// XLSX to CSV Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Every setting has a
// built-in default, so the converter runs with no configuration at all and
// converts public/itens.xlsx into public/itens_converted.csv.
//
// PRECEDENCE (highest first):
//   1. Command-line flags (applied by the cmd package)
//   2. Environment variables (optionally loaded from a .env file)
//   3. The YAML configuration file
//   4. Built-in defaults
//
// ENVIRONMENT VARIABLES:
//   XLSX2CSV_SOURCE     - source spreadsheet path
//   XLSX2CSV_DEST       - destination CSV path
//   XLSX2CSV_SHEET      - sheet name or zero-based index
//   XLSX2CSV_ENCODING   - output encoding
//   XLSX2CSV_LANGUAGE   - report language ("en" or "pt")
//   XLSX2CSV_LOG_LEVEL  - log level
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/csvwriter"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/logging"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/report"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/pkg/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultSourceFile is the spreadsheet converted when nothing else is configured.
	DefaultSourceFile = "public/itens.xlsx"

	// DefaultDestFile is where the CSV is written when nothing else is configured.
	DefaultDestFile = "public/itens_converted.csv"

	// DefaultEncoding is the output text encoding.
	DefaultEncoding = "utf-8"

	// DefaultPreviewRows is the number of rows shown in the report.
	DefaultPreviewRows = 5
)

// Environment variable names.
const (
	EnvSource   = "XLSX2CSV_SOURCE"
	EnvDest     = "XLSX2CSV_DEST"
	EnvSheet    = "XLSX2CSV_SHEET"
	EnvEncoding = "XLSX2CSV_ENCODING"
	EnvLanguage = "XLSX2CSV_LANGUAGE"
	EnvLogLevel = "XLSX2CSV_LOG_LEVEL"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
type MainConfig struct {
	// =========================================================================
	// INPUT SETTINGS
	// =========================================================================

	// SourceFile is the spreadsheet to convert.
	// Default: "public/itens.xlsx"
	SourceFile string `yaml:"source_file"`

	// Sheet selects the sheet to convert, by name or zero-based index.
	// Default: "" (the first sheet)
	Sheet string `yaml:"sheet"`

	// RawValues reads unformatted cell values instead of displayed values.
	// Default: false
	RawValues bool `yaml:"raw_values"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// DestFile is the delimited text file to write. It is overwritten if it exists.
	// Default: "public/itens_converted.csv"
	DestFile string `yaml:"dest_file"`

	// Encoding is the output text encoding.
	// Valid values: "utf-8", "utf-8-sig", "latin1", "windows-1252", "utf-16", ...
	// Default: "utf-8"
	Encoding string `yaml:"encoding"`

	// Delimiter is the field separator. Common values: ",", ";", "tab", "pipe"
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// LineTerminator is "lf" or "crlf".
	// Default: "lf"
	LineTerminator string `yaml:"line_terminator"`

	// IncludeIndex writes a leading row-index column.
	// Default: false
	IncludeIndex bool `yaml:"include_index"`

	// =========================================================================
	// REPORT SETTINGS
	// =========================================================================

	// PreviewRows is the number of rows printed after conversion.
	// Default: 5
	PreviewRows *int `yaml:"preview_rows"`

	// Language selects the report labels.
	// Valid values: "en", "pt"
	// Default: "en"
	Language string `yaml:"language"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file or environment is present.
func Default() *MainConfig {
	config := &MainConfig{}
	applyMainConfigDefaults(config)
	return config
}

// LoadMainConfig loads the configuration from a YAML file and the environment.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. A missing file is not
//     an error; the defaults are used instead.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be parsed or the result is invalid.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Optional file.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnvOverrides(&config)
	applyMainConfigDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if utils.FileExists(f) {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// applyEnvOverrides copies set environment variables into config.
func applyEnvOverrides(config *MainConfig) {
	overrides := map[string]*string{
		EnvSource:   &config.SourceFile,
		EnvDest:     &config.DestFile,
		EnvSheet:    &config.Sheet,
		EnvEncoding: &config.Encoding,
		EnvLanguage: &config.Language,
		EnvLogLevel: &config.LogLevel,
	}

	for name, field := range overrides {
		if value, ok := os.LookupEnv(name); ok && strings.TrimSpace(value) != "" {
			*field = strings.TrimSpace(value)
		}
	}
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.SourceFile == "" {
		config.SourceFile = DefaultSourceFile
	}
	if config.DestFile == "" {
		config.DestFile = DefaultDestFile
	}
	if config.Encoding == "" {
		config.Encoding = DefaultEncoding
	}
	if config.Delimiter == "" {
		config.Delimiter = ","
	}
	if config.LineTerminator == "" {
		config.LineTerminator = "lf"
	}
	if config.PreviewRows == nil {
		rows := DefaultPreviewRows
		config.PreviewRows = &rows
	}
	if config.Language == "" {
		config.Language = "en"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// Validate checks the configuration for values the converter cannot use.
func (c *MainConfig) Validate() error {
	if strings.TrimSpace(c.SourceFile) == "" {
		return fmt.Errorf("source_file must not be empty")
	}
	if strings.TrimSpace(c.DestFile) == "" {
		return fmt.Errorf("dest_file must not be empty")
	}
	if utils.SamePath(c.SourceFile, c.DestFile) {
		return fmt.Errorf("source_file and dest_file must differ (both are %s)", c.SourceFile)
	}
	if _, _, err := csvwriter.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	switch strings.ToLower(c.LineTerminator) {
	case "lf", "crlf":
	default:
		return fmt.Errorf("line_terminator must be \"lf\" or \"crlf\", got %q", c.LineTerminator)
	}
	if c.PreviewRows != nil && *c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative, got %d", *c.PreviewRows)
	}
	if _, err := report.LabelsFor(c.Language); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WriterOptions returns the csvwriter options described by the configuration.
func (c *MainConfig) WriterOptions() csvwriter.Options {
	return csvwriter.Options{
		Delimiter:    c.Delimiter,
		Encoding:     c.Encoding,
		IncludeIndex: c.IncludeIndex,
		UseCRLF:      strings.EqualFold(c.LineTerminator, "crlf"),
	}
}

// Preview returns the configured number of preview rows.
func (c *MainConfig) Preview() int {
	if c.PreviewRows == nil {
		return DefaultPreviewRows
	}
	return *c.PreviewRows
}

// ReportLabels returns the report labels for the configured language.
// An unknown language falls back to English; Validate rejects it first.
func (c *MainConfig) ReportLabels() report.Labels {
	labels, err := report.LabelsFor(c.Language)
	if err != nil {
		return report.English
	}
	return labels
}
