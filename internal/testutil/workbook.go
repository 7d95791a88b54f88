// Package testutil builds spreadsheet fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is a named sheet and its rows, starting at cell A1.
// A nil row leaves that spreadsheet row blank.
type Sheet struct {
	Name string
	Rows [][]interface{}

	// Formats maps cell references such as "B2" to a custom number format.
	Formats map[string]string
}

// WriteWorkbook saves the given sheets, in order, to name inside a fresh
// temporary directory and returns the file path.
func WriteWorkbook(t *testing.T, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.Name))
		} else {
			_, err := f.NewSheet(sheet.Name)
			require.NoError(t, err)
		}

		for r, row := range sheet.Rows {
			if row == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(sheet.Name, cell, &values))
		}

		for ref, code := range sheet.Formats {
			style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
			require.NoError(t, err)
			require.NoError(t, f.SetCellStyle(sheet.Name, ref, ref, style))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}
