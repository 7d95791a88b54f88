// =============================================================================
// XLSX to CSV Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which loads the source sheet,
// writes the CSV and prints the report. The root command runs the same
// function when called without a subcommand.
//
// COMMAND USAGE:
//   converter convert [flags]
//
// FLAGS (override the configuration file and environment):
//   --source        : Source spreadsheet path
//   --dest          : Destination CSV path
//   --sheet         : Sheet name or zero-based index
//   --encoding      : Output encoding
//   --delimiter     : Field separator
//   --index         : Write a leading row-index column
//   --preview-rows  : Number of rows shown in the report
//   --language      : Report language (en, pt)
//   --dry-run       : Load and report without writing the destination
//
// =============================================================================

package cmd

import (
	"context"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/converter"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	sourceFlag      string
	destFlag        string
	sheetFlag       string
	encodingFlag    string
	delimiterFlag   string
	indexFlag       bool
	previewRowsFlag int
	languageFlag    string
	dryRun          bool
)

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the source spreadsheet to CSV",
	Long: `The convert command reads one sheet of the source spreadsheet, writes it to
the destination as delimited text and prints the column names and the first
rows.

The destination is overwritten without confirmation. It is left untouched if
the source cannot be read.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)
	addConversionFlags(convertCmd)
}

// addConversionFlags registers the conversion flags on c.
// The root command and the convert command share the same variables.
func addConversionFlags(c *cobra.Command) {
	c.Flags().StringVar(&sourceFlag, "source", "", "Source spreadsheet path")
	c.Flags().StringVar(&destFlag, "dest", "", "Destination CSV path")
	c.Flags().StringVar(&sheetFlag, "sheet", "", "Sheet name or zero-based index (default: first sheet)")
	c.Flags().StringVar(&encodingFlag, "encoding", "", "Output encoding (utf-8, utf-8-sig, latin1, windows-1252, utf-16)")
	c.Flags().StringVar(&delimiterFlag, "delimiter", "", "Field separator (',', ';', 'tab', 'pipe')")
	c.Flags().BoolVar(&indexFlag, "index", false, "Write a leading row-index column")
	c.Flags().IntVar(&previewRowsFlag, "preview-rows", 5, "Number of rows shown after conversion")
	c.Flags().StringVar(&languageFlag, "language", "", "Report language (en, pt)")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Load and report without writing the destination")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert applies the flags to the loaded configuration and runs the
// conversion. The report goes to the command's stdout.
func runConvert(cmd *cobra.Command) error {
	cfg := *appConfig
	flags := cmd.Flags()

	if flags.Changed("source") {
		cfg.SourceFile = sourceFlag
	}
	if flags.Changed("dest") {
		cfg.DestFile = destFlag
	}
	if flags.Changed("sheet") {
		cfg.Sheet = sheetFlag
	}
	if flags.Changed("encoding") {
		cfg.Encoding = encodingFlag
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = delimiterFlag
	}
	if flags.Changed("index") {
		cfg.IncludeIndex = indexFlag
	}
	if flags.Changed("preview-rows") {
		rows := previewRowsFlag
		cfg.PreviewRows = &rows
	}
	if flags.Changed("language") {
		cfg.Language = languageFlag
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := converter.OptionsFromConfig(&cfg)
	opts.DryRun = dryRun

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := converter.New(opts, cmd.OutOrStdout(), logger).Run(ctx)
	if result.Error != nil {
		return result.Error
	}

	logger.Debug("Converted %d rows x %d columns in %s",
		result.Stats.Rows, result.Stats.Columns, result.Stats.ProcessingTime)

	return nil
}
