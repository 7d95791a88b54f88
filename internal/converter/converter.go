// =============================================================================
// XLSX to CSV Converter - Converter Module
// =============================================================================
//
// This module contains the conversion pipeline for one spreadsheet.
//
// CONVERSION PIPELINE:
//   1. Load the selected sheet of the source spreadsheet into a Table
//   2. Write the Table to the destination as delimited text
//   3. Report the success message, column names and a row preview
//
// The steps run strictly in order. A failure stops the pipeline, so the
// destination is never touched when the source cannot be loaded.
//
// =============================================================================

package converter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/csvwriter"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/report"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/types"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/xlsxreader"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// SourceFile is the path to the spreadsheet that was read.
	SourceFile string

	// OutputFile is the path to the written CSV file.
	// This is empty if processing failed or was a dry run.
	OutputFile string

	// Success indicates whether the conversion was successful.
	Success bool

	// Error contains the error if the conversion failed.
	Error error

	// Table is the loaded table. Nil if loading failed.
	Table *types.Table

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the conversion.
type ProcessingStats struct {
	// Rows is the number of data rows written (the header is not counted).
	Rows int

	// Columns is the number of columns written.
	Columns int

	// BytesWritten is the size of the output file.
	BytesWritten int64

	// ProcessingTime is the time taken by the whole pipeline.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options describes one conversion.
type Options struct {
	// SourceFile is the spreadsheet to read.
	SourceFile string

	// DestFile is the delimited text file to write.
	DestFile string

	// Reader controls sheet selection and cell formatting.
	Reader xlsxreader.Options

	// Writer controls the output format.
	Writer csvwriter.Options

	// PreviewRows is the number of rows shown in the report.
	PreviewRows int

	// Labels is the report text. The zero value means English.
	Labels report.Labels

	// DryRun loads and reports without writing the destination.
	DryRun bool
}

// OptionsFromConfig builds conversion options from the application configuration.
func OptionsFromConfig(cfg *config.MainConfig) Options {
	return Options{
		SourceFile: cfg.SourceFile,
		DestFile:   cfg.DestFile,
		Reader: xlsxreader.Options{
			Sheet:     cfg.Sheet,
			RawValues: cfg.RawValues,
		},
		Writer:      cfg.WriterOptions(),
		PreviewRows: cfg.Preview(),
		Labels:      cfg.ReportLabels(),
	}
}

// Converter handles the conversion of a single spreadsheet to CSV.
type Converter struct {
	opts Options

	// out receives the report.
	out io.Writer

	logger Logger
}

// Logger is the logging interface used by the converter.
// logging.Logger implements it on top of zerolog.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter.
//
// PARAMETERS:
//   - opts: What to convert and how.
//   - out: Where the report is printed (stdout in the CLI).
//   - logger: Where diagnostics go. Nil discards them.
func New(opts Options, out io.Writer, logger Logger) *Converter {
	if logger == nil {
		logger = nopLogger{}
	}
	if out == nil {
		out = io.Discard
	}
	return &Converter{
		opts:   opts,
		out:    out,
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
// The context is checked between steps; a cancelled context stops the
// pipeline before the destination is written.
func (c *Converter) Run(ctx context.Context) Result {
	startTime := time.Now()
	result := Result{
		SourceFile: c.opts.SourceFile,
	}

	fail := func(err error) Result {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		c.logger.Error("Conversion failed: %v", err)
		return result
	}

	// =========================================================================
	// STEP 1: LOAD SPREADSHEET
	// =========================================================================

	c.logger.Info("Loading spreadsheet: %s", c.opts.SourceFile)

	table, err := xlsxreader.LoadWithOptions(c.opts.SourceFile, c.opts.Reader)
	if err != nil {
		return fail(fmt.Errorf("failed to load %s: %w", c.opts.SourceFile, err))
	}

	result.Table = table
	result.Stats.Rows = table.NumRows()
	result.Stats.Columns = table.NumColumns()
	c.logger.Debug("Loaded sheet %q with %d rows and %d columns", table.SheetName, table.NumRows(), table.NumColumns())

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// =========================================================================
	// STEP 2: WRITE CSV
	// =========================================================================

	if c.opts.DryRun {
		c.logger.Info("Dry run: skipping write of %s", c.opts.DestFile)
	} else {
		n, err := csvwriter.WriteFile(c.opts.DestFile, table, c.opts.Writer)
		if err != nil {
			return fail(fmt.Errorf("failed to write %s: %w", c.opts.DestFile, err))
		}
		result.OutputFile = c.opts.DestFile
		result.Stats.BytesWritten = n
		c.logger.Info("Wrote %d bytes to %s", n, c.opts.DestFile)
	}

	// =========================================================================
	// STEP 3: REPORT
	// =========================================================================

	if err := report.Print(c.out, table, report.Options{
		PreviewRows: c.opts.PreviewRows,
		Labels:      c.opts.Labels,
	}); err != nil {
		return fail(err)
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	c.logger.Debug("Conversion finished in %s", result.Stats.ProcessingTime)

	return result
}

// =============================================================================
// DEFAULT LOGGER
// =============================================================================

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{}) {}
func (nopLogger) Error(msg string, args ...interface{}) {}
