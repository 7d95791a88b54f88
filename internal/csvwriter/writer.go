// =============================================================================
// XLSX to CSV Converter - CSV Writer Module
// =============================================================================
//
// This module persists a types.Table as delimited text. It handles:
//   - Different delimiters (comma, pipe, tab, semicolon)
//   - Different output encodings (UTF-8, UTF-8 with BOM, Latin-1, ...)
//   - An optional leading row-index column
//   - LF or CRLF line terminators
//
// OUTPUT LAYOUT:
//   id,name        <- header line (column names in sheet order)
//   1,A            <- one line per data row
//   2,B
//
//   With IncludeIndex the first column is unnamed and numbered from 0:
//   ,id,name
//   0,1,A
//   1,2,B
//
// The output only depends on the table and the options, so converting the
// same sheet twice yields byte-identical files.
//
// =============================================================================

package csvwriter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/types"
	"github.com/ginjaninja78/XLSX-to-CSV-conversion/pkg/utils"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned for an encoding name this writer does not know.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// utf8BOM is written ahead of the content for the "utf-8-sig" encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// WRITER OPTIONS
// =============================================================================

// Options controls the delimited text output.
type Options struct {
	// Delimiter is the field separator.
	// Accepts a single character or one of the aliases "tab", "pipe",
	// "semicolon". Default: ","
	Delimiter string

	// Encoding is the output text encoding. Default: "utf-8"
	Encoding string

	// IncludeIndex writes a leading, unnamed column numbering the rows from 0.
	IncludeIndex bool

	// UseCRLF terminates lines with "\r\n" instead of "\n".
	UseCRLF bool
}

// DefaultOptions returns comma-delimited UTF-8 output without a row index.
func DefaultOptions() Options {
	return Options{
		Delimiter: ",",
		Encoding:  "utf-8",
	}
}

// =============================================================================
// WRITE FUNCTIONS
// =============================================================================

// Write encodes table as delimited text into w.
//
// RETURNS:
//   - An error if the encoding is unknown, a cell cannot be represented in the
//     target encoding, or w fails.
func Write(w io.Writer, table *types.Table, opts Options) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("invalid table: %w", err)
	}

	comma, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}

	enc, withBOM, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return err
	}

	if withBOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write byte order mark: %w", err)
		}
	}

	out := w
	var encoder *transform.Writer
	if enc != nil {
		encoder = transform.NewWriter(w, enc.NewEncoder())
		out = encoder
	}

	cw := csv.NewWriter(out)
	cw.Comma = comma
	cw.UseCRLF = opts.UseCRLF

	if err := cw.Write(headerRecord(table, opts.IncludeIndex)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		if err := cw.Write(dataRecord(i, row, opts.IncludeIndex)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if encoder != nil {
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode output as %s: %w", opts.Encoding, err)
		}
	}

	return nil
}

// WriteFile encodes table and replaces the file at path with the result.
// Nothing is written to path unless the whole table encodes successfully.
//
// RETURNS:
//   - The number of bytes written.
//   - An error if encoding or writing fails.
func WriteFile(path string, table *types.Table, opts Options) (int64, error) {
	var buf bytes.Buffer
	if err := Write(&buf, table, opts); err != nil {
		return 0, err
	}

	if err := utils.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return 0, err
	}

	return int64(buf.Len()), nil
}

// headerRecord returns the header line fields.
func headerRecord(table *types.Table, includeIndex bool) []string {
	if !includeIndex {
		return table.Columns
	}
	return append([]string{""}, table.Columns...)
}

// dataRecord returns the fields of the data row at position i.
func dataRecord(i int, row []string, includeIndex bool) []string {
	if !includeIndex {
		return row
	}
	return append([]string{strconv.Itoa(i)}, row...)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// parseDelimiter resolves the configured delimiter to a rune.
func parseDelimiter(delimiter string) (rune, error) {
	switch delimiter {
	case "", ",", "comma":
		return ',', nil
	case "\\t", "\t", "tab", "TAB":
		return '\t', nil
	case "|", "pipe", "PIPE":
		return '|', nil
	case ";", "semicolon":
		return ';', nil
	}

	runes := []rune(delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", delimiter)
	}
	if runes[0] == '"' || runes[0] == '\r' || runes[0] == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", delimiter)
	}
	return runes[0], nil
}

// LookupEncoding resolves an encoding name.
//
// RETURNS:
//   - The encoding to transcode UTF-8 into, or nil when output stays UTF-8.
//   - Whether a UTF-8 byte order mark must precede the content.
//   - ErrUnsupportedEncoding for unknown names.
func LookupEncoding(name string) (encoding.Encoding, bool, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")

	switch normalized {
	case "", "utf-8", "utf8":
		return nil, false, nil
	case "utf-8-sig", "utf8-sig":
		return nil, true, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, false, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, false, nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15, false, nil
	case "utf-16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), false, nil
	}

	return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}
