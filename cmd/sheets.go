package cmd

import (
	"fmt"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/xlsxreader"
	"github.com/spf13/cobra"
)

// sheetsCmd represents the 'sheets' command.
var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets of the source spreadsheet",
	Long: `List the sheet names of the source spreadsheet with their zero-based
index, in workbook order. Either value can be passed to --sheet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := appConfig.SourceFile
		if cmd.Flags().Changed("source") {
			source = sourceFlag
		}

		sheets, err := xlsxreader.ListSheets(source)
		if err != nil {
			return err
		}

		for i, name := range sheets {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
	sheetsCmd.Flags().StringVar(&sourceFlag, "source", "", "Source spreadsheet path")
}
