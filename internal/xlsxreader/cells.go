// =============================================================================
// XLSX to CSV Converter - Cell Values
// =============================================================================
//
// This file decides the text written for each typed cell.
//
// CELL RULES (formatted mode):
//   - Booleans                      -> True / False
//   - Numbers with a date format    -> 2006-01-02, or 2006-01-02 15:04:05
//                                      when the value has a time part,
//                                      or 15:04:05 for a time of day alone
//   - Numbers with General format   -> the stored value, shortest round-trip
//                                      form (0.1+0.2 stays 0.30000000000000004,
//                                      whole numbers have no decimal point)
//   - Numbers with any other format -> the text the number format displays
//   - Everything else (strings, errors, formula text) -> the displayed text
//
// In raw mode every cell is the stored value, untouched.
//
// =============================================================================

package xlsxreader

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Built-in number format IDs that display dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// numberFormat describes how a style displays numbers.
type numberFormat struct {
	date    bool
	general bool
}

// cellFormatter converts the cells of one sheet.
type cellFormatter struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]numberFormat
}

func newCellFormatter(f *excelize.File, sheet string) *cellFormatter {
	c := &cellFormatter{f: f, sheet: sheet, styles: make(map[int]numberFormat)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		c.date1904 = *props.Date1904
	}
	return c
}

// convertRows replaces the displayed text of typed cells in shown, using
// the stored values in raw. Both come from GetRows on the same sheet, so
// shown[i][j] is the cell at row i+1, column j+1.
func (c *cellFormatter) convertRows(shown, raw [][]string) {
	for i, row := range shown {
		if i >= len(raw) {
			return
		}
		for j, text := range row {
			if j >= len(raw[i]) || raw[i][j] == "" {
				continue
			}
			row[j] = c.convert(i, j, raw[i][j], text)
		}
	}
}

// convert returns the text for the cell at zero-based row i, column j.
// Any lookup failure falls back to the displayed text.
func (c *cellFormatter) convert(i, j int, raw, shown string) string {
	ref, err := excelize.CoordinatesToCellName(j+1, i+1)
	if err != nil {
		return shown
	}
	typ, err := c.f.GetCellType(c.sheet, ref)
	if err != nil {
		return shown
	}

	switch typ {
	case excelize.CellTypeBool:
		return formatBool(raw, shown)

	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return formatTime(t)
		}
		return shown

	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return shown
		}
		style, err := c.f.GetCellStyle(c.sheet, ref)
		if err != nil {
			return shown
		}
		nf := c.numberFormat(style)
		switch {
		case nf.date:
			if v >= 0 && v < 1 {
				t, _ := excelize.ExcelDateToTime(v, false)
				return t.Format(time.TimeOnly)
			}
			t, err := excelize.ExcelDateToTime(v, c.date1904)
			if err != nil {
				return shown
			}
			return formatTime(t)
		case nf.general:
			return formatNumber(v)
		}
	}

	return shown
}

// numberFormat looks up and caches the number format of a style.
func (c *cellFormatter) numberFormat(styleID int) numberFormat {
	if nf, ok := c.styles[styleID]; ok {
		return nf
	}

	var nf numberFormat
	style, err := c.f.GetStyle(styleID)
	switch {
	case err != nil:
		nf.general = styleID == 0
	case style.CustomNumFmt != nil:
		code := *style.CustomNumFmt
		nf.general = strings.EqualFold(code, "General")
		nf.date = !nf.general && isDateFormatCode(code)
	default:
		nf.general = style.NumFmt == 0
		nf.date = builtInDateFormats[style.NumFmt]
	}

	c.styles[styleID] = nf
	return nf
}

// isDateFormatCode reports whether a custom number format shows a date or
// time. Only the first section is inspected. Quoted text, escaped
// characters, fill and padding characters and bracketed parts such as
// colors or locales are ignored.
func isDateFormatCode(code string) bool {
	inQuote := false
	inBracket := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case ch == ';':
			return false
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}

func formatBool(raw, shown string) string {
	switch raw {
	case "1":
		return "True"
	case "0":
		return "False"
	}
	return shown
}

// formatTime drops the clock when it is midnight.
func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}

// formatNumber writes whole numbers without a decimal point and other values
// in their shortest round-trip form, switching to exponent notation below
// 1e-4 or from 1e16 up.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	exp := strconv.FormatFloat(v, 'e', -1, 64)
	if n, err := strconv.Atoi(exp[strings.IndexByte(exp, 'e')+1:]); err == nil && (n < -4 || n >= 16) {
		return exp
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
