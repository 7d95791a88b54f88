// =============================================================================
// XLSX to CSV Converter - Shared Types
// =============================================================================
//
// This package contains the in-memory Table shared by every stage of the
// conversion. Types defined here are used by:
//   - xlsxreader (produces a Table from a spreadsheet sheet)
//   - csvwriter  (persists a Table as delimited text)
//   - report     (renders the column list and the row preview)
//
// =============================================================================

package types

import "fmt"

// =============================================================================
// TABLE
// =============================================================================

// Table is a two-dimensional ordered collection of named columns and rows.
// It is loaded wholesale from one spreadsheet sheet and only lives for the
// duration of a single conversion.
//
// Every row holds exactly len(Columns) cells. Readers are responsible for
// padding short rows; Validate reports any row that breaks this.
type Table struct {
	// Columns contains the column names in sheet order.
	Columns []string

	// Rows contains the data rows in sheet order.
	// Empty cells are represented by the empty string.
	Rows [][]string

	// SheetName is the name of the sheet the table was read from.
	SheetName string
}

// NumRows returns the number of data rows (the header is not counted).
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// Head returns a table holding the first n rows, or all rows if the table has
// fewer than n. The returned table shares its column slice and rows with t.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{
		Columns:   t.Columns,
		Rows:      t.Rows[:n],
		SheetName: t.SheetName,
	}
}

// Column returns every value of the named column in row order.
// The boolean is false if the column does not exist.
func (t *Table) Column(name string) ([]string, bool) {
	for i, c := range t.Columns {
		if c == name {
			return t.ColumnAt(i), true
		}
	}
	return nil, false
}

// ColumnAt returns every value of the column at position i in row order.
func (t *Table) ColumnAt(i int) []string {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if i < len(row) {
			values = append(values, row[i])
		} else {
			values = append(values, "")
		}
	}
	return values
}

// Validate checks that every row has exactly one cell per column.
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, expected %d", i+1, len(row), len(t.Columns))
		}
	}
	return nil
}
