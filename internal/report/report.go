// =============================================================================
// XLSX to CSV Converter - Report Module
// =============================================================================
//
// This module prints the outcome of a conversion for a human reader.
//
// OUTPUT:
//   File converted successfully!
//   Available columns: ['id', 'name']
//   First 5 rows:
//      id name
//   0   1    A
//   1   2    B
//
// The preview follows the familiar data-frame layout: a left-aligned row
// index, each column right-aligned to its widest cell, numeric column headers
// shifted by one space and empty cells shown as NaN. Whether a column is
// numeric is decided over the whole table, not just the previewed rows.
//
// The three labels come in English (default) and Portuguese.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/types"
	"github.com/mattn/go-runewidth"
)

// DefaultPreviewRows is the number of rows shown when no count is configured.
const DefaultPreviewRows = 5

// missingValue is shown in the preview for empty cells.
const missingValue = "NaN"

// =============================================================================
// LABELS
// =============================================================================

// Labels holds the report's fixed text. FirstRows is a format string that
// receives the preview row count.
type Labels struct {
	Success   string
	Columns   string
	FirstRows string
}

// English is the default label set.
var English = Labels{
	Success:   "File converted successfully!",
	Columns:   "Available columns:",
	FirstRows: "First %d rows:",
}

// Portuguese is the label set of the Portuguese-speaking users the tool was
// first written for.
var Portuguese = Labels{
	Success:   "Arquivo convertido com sucesso!",
	Columns:   "Colunas disponíveis:",
	FirstRows: "Primeiras %d linhas:",
}

// LabelsFor returns the label set for a language code.
// Valid values: "en" (or empty), "pt", "pt-br".
func LabelsFor(language string) (Labels, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "en":
		return English, nil
	case "pt", "pt-br", "pt_br":
		return Portuguese, nil
	}
	return Labels{}, fmt.Errorf("unsupported report language %q (use \"en\" or \"pt\")", language)
}

// =============================================================================
// PRINT FUNCTIONS
// =============================================================================

// Options controls the report.
type Options struct {
	// PreviewRows is the number of rows shown. Negative means DefaultPreviewRows.
	PreviewRows int

	// Labels is the fixed text. The zero value means English.
	Labels Labels
}

// Print writes the success message, the column list and a preview of the
// first rows of table to w.
func Print(w io.Writer, table *types.Table, opts Options) error {
	previewRows := opts.PreviewRows
	if previewRows < 0 {
		previewRows = DefaultPreviewRows
	}
	labels := opts.Labels
	if labels == (Labels{}) {
		labels = English
	}

	lines := []string{
		successStyle(w).Render(labels.Success),
		labelStyle(w).Render(labels.Columns) + " " + FormatColumns(table.Columns),
		labelStyle(w).Render(fmt.Sprintf(labels.FirstRows, previewRows)),
		RenderPreview(table.Head(previewRows), numericColumns(table)),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

// FormatColumns renders column names as a list literal, e.g. ['id', 'name'].
func FormatColumns(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteName(c)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// quoteName single-quotes s, switching to double quotes when s contains a
// single quote but no double quote.
func quoteName(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case !strconv.IsPrint(r) && r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case !strconv.IsPrint(r) && r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		case !strconv.IsPrint(r):
			fmt.Fprintf(&b, `\U%08x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// =============================================================================
// PREVIEW RENDERING
// =============================================================================

// RenderPreview renders every row of table as an aligned text grid with a
// row index. It does not end with a newline.
//
// numeric marks the columns whose header is shifted right by one space. Pass
// the kinds of the full table when rendering a slice of it; nil derives them
// from the rows being rendered.
func RenderPreview(table *types.Table, numeric []bool) string {
	if table.NumRows() == 0 {
		return "Empty DataFrame\n" +
			"Columns: [" + strings.Join(table.Columns, ", ") + "]\n" +
			"Index: []"
	}

	index := make([]string, table.NumRows())
	indexWidth := 0
	for i := range index {
		index[i] = strconv.Itoa(i)
		indexWidth = max(indexWidth, len(index[i]))
	}

	type column struct {
		header string
		cells  []string
		width  int
	}

	columns := make([]column, table.NumColumns())
	for j, name := range table.Columns {
		values := table.ColumnAt(j)

		col := column{header: name, cells: make([]string, len(values))}
		if (numeric == nil && isNumeric(values)) || (j < len(numeric) && numeric[j]) {
			col.header = " " + name
		}
		col.width = runewidth.StringWidth(col.header)

		for i, v := range values {
			if v == "" {
				v = missingValue
			}
			col.cells[i] = " " + flattenCell(v)
			col.width = max(col.width, runewidth.StringWidth(col.cells[i]))
		}
		columns[j] = col
	}

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", indexWidth))
	for _, col := range columns {
		b.WriteString(" ")
		b.WriteString(padLeft(col.header, col.width))
	}

	for i := range index {
		b.WriteString("\n")
		b.WriteString(padRight(index[i], indexWidth))
		for _, col := range columns {
			b.WriteString(" ")
			b.WriteString(padLeft(col.cells[i], col.width))
		}
	}

	return b.String()
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// numericColumns reports, for each column of table, whether all its values
// are numeric.
func numericColumns(table *types.Table) []bool {
	kinds := make([]bool, table.NumColumns())
	for j := range kinds {
		kinds[j] = isNumeric(table.ColumnAt(j))
	}
	return kinds
}

// isNumeric reports whether every non-empty value parses as a number.
// A column with no values at all counts as numeric.
func isNumeric(values []string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return false
		}
	}
	return true
}

// flattenCell keeps multi-line cells on one preview line.
func flattenCell(s string) string {
	return strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`).Replace(s)
}

// padLeft right-aligns s to width display columns.
func padLeft(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// padRight left-aligns s to width display columns.
func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
