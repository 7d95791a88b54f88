package csvwriter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *types.Table {
	return &types.Table{
		Columns: []string{"id", "name"},
		Rows: [][]string{
			{"1", "A"},
			{"2", "B"},
		},
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name     string
		table    *types.Table
		opts     Options
		expected string
	}{
		{
			name:     "Default options",
			table:    sampleTable(),
			opts:     DefaultOptions(),
			expected: "id,name\n1,A\n2,B\n",
		},
		{
			name:     "Zero options behave like defaults",
			table:    sampleTable(),
			opts:     Options{},
			expected: "id,name\n1,A\n2,B\n",
		},
		{
			name:     "With index",
			table:    sampleTable(),
			opts:     Options{IncludeIndex: true},
			expected: ",id,name\n0,1,A\n1,2,B\n",
		},
		{
			name:     "Semicolon and CRLF",
			table:    sampleTable(),
			opts:     Options{Delimiter: "semicolon", UseCRLF: true},
			expected: "id;name\r\n1;A\r\n2;B\r\n",
		},
		{
			name: "Quotes fields that need it",
			table: &types.Table{
				Columns: []string{"item", "note"},
				Rows:    [][]string{{"Mouse, USB", `diz "ok"`}, {"Cabo", ""}},
			},
			opts:     DefaultOptions(),
			expected: "item,note\n\"Mouse, USB\",\"diz \"\"ok\"\"\"\nCabo,\n",
		},
		{
			name:     "Header only",
			table:    &types.Table{Columns: []string{"id", "name"}},
			opts:     DefaultOptions(),
			expected: "id,name\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.table, tt.opts))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteLineAndFieldCounts(t *testing.T) {
	table := &types.Table{Columns: []string{"a", "b", "c"}}
	for i := 0; i < 25; i++ {
		table.Rows = append(table.Rows, []string{"x", "y", "z"})
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table, DefaultOptions()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, table.NumRows()+1)
	assert.Equal(t, "a,b,c", lines[0])
	for _, line := range lines {
		assert.Len(t, strings.Split(line, ","), table.NumColumns())
	}
}

func TestWriteEncodings(t *testing.T) {
	table := &types.Table{
		Columns: []string{"descrição"},
		Rows:    [][]string{{"Laboratório"}},
	}

	t.Run("UTF-8", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, table, Options{Encoding: "UTF-8"}))
		assert.Equal(t, "descrição\nLaboratório\n", buf.String())
	})

	t.Run("UTF-8 with BOM", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, table, Options{Encoding: "utf_8_sig"}))
		assert.Equal(t, "\xEF\xBB\xBFdescrição\nLaboratório\n", buf.String())
	})

	t.Run("Latin-1", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, table, Options{Encoding: "latin1"}))
		assert.Equal(t, "descri\xE7\xE3o\nLaborat\xF3rio\n", buf.String())
	})

	t.Run("Unrepresentable character", func(t *testing.T) {
		var buf bytes.Buffer
		euro := &types.Table{Columns: []string{"price"}, Rows: [][]string{{"€ 10"}}}
		assert.Error(t, Write(&buf, euro, Options{Encoding: "iso-8859-1"}))
	})

	t.Run("Unknown encoding", func(t *testing.T) {
		var buf bytes.Buffer
		err := Write(&buf, table, Options{Encoding: "ebcdic"})
		assert.True(t, errors.Is(err, ErrUnsupportedEncoding))
		assert.Zero(t, buf.Len())
	})
}

func TestWriteRejectsRaggedTable(t *testing.T) {
	table := &types.Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1"}}}

	var buf bytes.Buffer
	assert.ErrorContains(t, Write(&buf, table, DefaultOptions()), "row 1 has 1 cells")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itens_converted.csv")

	n, err := WriteFile(path, sampleTable(), DefaultOptions())
	require.NoError(t, err)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,A\n2,B\n", string(first))
	assert.Equal(t, int64(len(first)), n)

	// Same table, same bytes.
	_, err = WriteFile(path, sampleTable(), DefaultOptions())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteFileLeavesTargetOnEncodingError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0644))

	_, err := WriteFile(path, sampleTable(), Options{Encoding: "klingon"})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{",", ',', false},
		{"tab", '\t', false},
		{"\\t", '\t', false},
		{"pipe", '|', false},
		{";", ';', false},
		{"#", '#', false},
		{"ab", 0, true},
		{"\"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDelimiter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
