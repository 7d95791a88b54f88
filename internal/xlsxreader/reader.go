// =============================================================================
// XLSX to CSV Converter - Spreadsheet Reader
// =============================================================================
//
// This module loads one sheet of a spreadsheet file into a types.Table.
//
// SHEET LAYOUT:
//   The first non-blank row is the header row. Every following non-blank row
//   is a data row. Blank rows (every cell empty) are skipped. Cells holding
//   only whitespace are values and are kept as they are, in headers too.
//
//   | Column A | Column B | Column C |
//   |----------|----------|----------|
//   | id       | name     |          |   <- header row
//   | 1        | A        |          |
//   |          |          |          |   <- skipped
//   | 2        | B        | extra    |   <- widens the table ("Unnamed: 2")
//
// CELL VALUES:
//   Typed cells are converted as described in cells.go, so dates come out
//   as ISO dates and booleans as True/False.
//
// HEADER NORMALIZATION:
//   - Blank header cells become "Unnamed: <i>" (zero-based column position)
//   - Repeated header names become "name", "name.1", "name.2", ...
//   - Data cells beyond the header width add "Unnamed: <i>" columns
//
// =============================================================================

package xlsxreader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/types"
	"github.com/xuri/excelize/v2"
)

// ErrNoColumns is returned when the selected sheet has no non-blank rows.
var ErrNoColumns = errors.New("no columns to parse from sheet")

// =============================================================================
// READER OPTIONS
// =============================================================================

// Options controls how a sheet is read.
type Options struct {
	// Sheet selects the sheet to read.
	// Empty selects the first sheet. If no sheet has this exact name and the
	// value is an integer, it is used as a zero-based sheet index.
	Sheet string

	// RawValues reads the stored cell values with no conversion at all:
	// dates stay serial numbers, booleans stay 1/0 and number formats are
	// not applied.
	RawValues bool
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the first sheet of the spreadsheet at path.
func Load(path string) (*types.Table, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads the sheet selected by opts from the spreadsheet at path.
//
// RETURNS:
//   - The loaded table, with every row padded to the column count.
//   - An error if the file cannot be opened, the sheet does not exist, or the
//     sheet has no header row.
func LoadWithOptions(path string, opts Options) (*types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheetName, err)
	}

	rows := raw
	if !opts.RawValues {
		if rows, err = f.GetRows(sheetName); err != nil {
			return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheetName, err)
		}
		newCellFormatter(f, sheetName).convertRows(rows, raw)
	}

	table, err := buildTable(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	table.SheetName = sheetName

	return table, nil
}

// ListSheets returns the sheet names of the spreadsheet at path in workbook order.
func ListSheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// resolveSheet maps the configured sheet selector to a sheet name.
func resolveSheet(f *excelize.File, selector string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("spreadsheet has no sheets")
	}

	if selector == "" {
		return sheets[0], nil
	}

	for _, name := range sheets {
		if name == selector {
			return name, nil
		}
	}

	if idx, err := strconv.Atoi(selector); err == nil {
		if idx >= 0 && idx < len(sheets) {
			return sheets[idx], nil
		}
		return "", fmt.Errorf("sheet index %d out of range (%d sheets)", idx, len(sheets))
	}

	return "", fmt.Errorf("sheet %q not found (available: %s)", selector, strings.Join(sheets, ", "))
}

// =============================================================================
// TABLE CONSTRUCTION
// =============================================================================

// buildTable turns the raw sheet rows into a Table.
func buildTable(rows [][]string) (*types.Table, error) {
	headerIdx := -1
	for i, row := range rows {
		if !isRowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, ErrNoColumns
	}

	header := rows[headerIdx]
	var data [][]string
	width := len(header)
	for _, row := range rows[headerIdx+1:] {
		if isRowEmpty(row) {
			continue
		}
		data = append(data, row)
		if len(row) > width {
			width = len(row)
		}
	}

	columns := normalizeHeaders(header, width)

	table := &types.Table{
		Columns: columns,
		Rows:    make([][]string, 0, len(data)),
	}
	for _, row := range data {
		padded := make([]string, width)
		copy(padded, row)
		table.Rows = append(table.Rows, padded)
	}

	return table, nil
}

// normalizeHeaders names blank header cells, widens the header to width and
// makes repeated names unique.
func normalizeHeaders(header []string, width int) []string {
	names := make([]string, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		names[i] = name
	}
	return dedupeNames(names)
}

// dedupeNames appends ".N" suffixes to repeated names, skipping any suffixed
// name that is already taken.
func dedupeNames(names []string) []string {
	counts := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, col := range names {
		cur := counts[col]
		for cur > 0 {
			counts[col] = cur + 1
			col = fmt.Sprintf("%s.%d", col, cur)
			cur = counts[col]
		}
		out[i] = col
		counts[col] = cur + 1
	}
	return out
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
