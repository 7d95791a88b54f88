// =============================================================================
// XLSX to CSV Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command.
//
// COMMAND USAGE:
//   converter version           # full build report
//   converter version --short   # version number only
//
// OUTPUT:
//   XLSX to CSV Converter
//   Version:    1.0.0
//   Commit:     3f2c9e1 (modified)
//   Build Date: 2025-11-18
//   Go Version: go1.24.11
//   Platform:   linux/amd64
//   Excelize:   v2.10.0
//
// Commit and Excelize come from the build information embedded by the Go
// toolchain and are "unknown" when it is not available (e.g. under go test).
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/XLSX-to-CSV-conversion/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

const excelizeModule = "github.com/xuri/excelize/v2"

var shortVersion bool

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long: `Display the application version, source commit, build date, Go runtime,
platform and the version of the spreadsheet library the binary was built with.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if shortVersion {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		}
		info, _ := debug.ReadBuildInfo()
		return writeVersion(cmd.OutOrStdout(), info)
	},
}

// init registers the version command with the root command.
func init() {
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints the build report. info may be nil.
func writeVersion(w io.Writer, info *debug.BuildInfo) error {
	commit, excelize := "unknown", "unknown"
	if info != nil {
		commit = vcsCommit(info)
		for _, dep := range info.Deps {
			if dep.Path == excelizeModule {
				excelize = dep.Version
			}
		}
	}

	_, err := fmt.Fprintf(w, "XLSX to CSV Converter\n"+
		"Version:    %s\n"+
		"Commit:     %s\n"+
		"Build Date: %s\n"+
		"Go Version: %s\n"+
		"Platform:   %s/%s\n"+
		"Excelize:   %s\n",
		Version, commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH, excelize)
	return err
}

// vcsCommit returns the short source revision recorded in info.
func vcsCommit(info *debug.BuildInfo) string {
	var revision string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return "unknown"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified {
		revision += " (modified)"
	}
	return revision
}
