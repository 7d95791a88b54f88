// =============================================================================
// XLSX to CSV Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Called without a
// subcommand, the root command runs the conversion, so a bare `converter`
// behaves exactly like `converter convert`.
//
// COBRA CLI STRUCTURE:
//   rootCmd (converter)
//   ├── convertCmd (converter convert)
//   ├── sheetsCmd  (converter sheets)
//   └── versionCmd (converter version)
//
// CONFIGURATION:
//   Before any command runs, the root command:
//   1. Loads a .env file from the working directory, if present
//   2. Loads the YAML configuration file (--config), if present
//   3. Sets up logging on stderr
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig is the configuration loaded before the command runs.
var appConfig *config.MainConfig

// logger is the run-scoped logger set up before the command runs.
var logger *logging.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "converter",
	Short: "XLSX to CSV Converter - Export a spreadsheet sheet as delimited text",
	Long: `XLSX to CSV Converter reads one sheet of a spreadsheet file and writes it
to a delimited text file, then prints the column names and the first rows.

With no configuration it converts public/itens.xlsx into
public/itens_converted.csv as UTF-8 CSV without a row-index column.

Example Usage:
  converter                                  # Convert using the defaults
  converter convert --source in.xlsx --dest out.csv
  converter convert --sheet EDUCAR --encoding latin1
  converter sheets --source in.xlsx          # List the sheets of a workbook`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},

	// With no subcommand the root command converts.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Path to an optional YAML configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (ignored if it does not exist)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	addConversionFlags(rootCmd)
}

// initConfig loads the environment and configuration and sets up logging.
func initConfig(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	base, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = base.With("run_id", uuid.New().String())
	logger.Debug("Using configuration file %s", cfgFile)

	return nil
}
