// =============================================================================
// XLSX to CSV Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the XLSX to CSV Converter CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   converter               - Convert the configured spreadsheet to CSV
//   converter convert       - Same, with flags to override the configuration
//   converter sheets        - List the sheets of the source spreadsheet
//   converter version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Loading, writing, reporting and configuration
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/cmd"
)

func main() {
	cmd.Execute()
}
