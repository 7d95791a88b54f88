package xlsxreader

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/ginjaninja78/XLSX-to-CSV-conversion/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := testutil.WriteWorkbook(t, "itens.xlsx", testutil.Sheet{
		Name: "Sheet1",
		Rows: [][]interface{}{
			{"id", "name"},
			{1, "A"},
			{2, "B"},
		},
	})

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", table.SheetName)
	assert.Equal(t, []string{"id", "name"}, table.Columns)
	assert.Equal(t, [][]string{{"1", "A"}, {"2", "B"}}, table.Rows)
	assert.NoError(t, table.Validate())
}

func TestLoadSkipsBlankRowsAndPads(t *testing.T) {
	path := testutil.WriteWorkbook(t, "blank.xlsx", testutil.Sheet{
		Name: "Data",
		Rows: [][]interface{}{
			nil,
			{"code", "description", "qty"},
			{"X1", "Mouse"},
			nil,
			{"X2", "Teclado", 3},
		},
	})

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"code", "description", "qty"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"X1", "Mouse", ""}, table.Rows[0])
	assert.Equal(t, []string{"X2", "Teclado", "3"}, table.Rows[1])
}

func TestLoadNormalizesHeaders(t *testing.T) {
	path := testutil.WriteWorkbook(t, "headers.xlsx", testutil.Sheet{
		Name: "Sheet1",
		Rows: [][]interface{}{
			{"name", "", "name", "name.1"},
			{"a", "b", "c", "d", "overflow"},
		},
	})

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "Unnamed: 1", "name.1", "name.1.1", "Unnamed: 4"}, table.Columns)
	assert.Equal(t, [][]string{{"a", "b", "c", "d", "overflow"}}, table.Rows)
}

func TestLoadKeepsWhitespaceCells(t *testing.T) {
	path := testutil.WriteWorkbook(t, "spaces.xlsx", testutil.Sheet{
		Name: "Sheet1",
		Rows: [][]interface{}{
			{" id ", "name"},
			{"1", "A"},
			{" "},
		},
	})

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{" id ", "name"}, table.Columns)
	assert.Equal(t, [][]string{{"1", "A"}, {" ", ""}}, table.Rows)
}

func TestLoadConvertsTypedCells(t *testing.T) {
	a, b := 0.1, 0.2
	path := testutil.WriteWorkbook(t, "typed.xlsx", testutil.Sheet{
		Name: "Sheet1",
		Rows: [][]interface{}{
			{"item", "bought", "ok", "price"},
			{"Monitor", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true, a + b},
			{"CPU", time.Date(2024, 3, 15, 13, 45, 30, 0, time.UTC), false, 1.5},
			{"Mouse", 45366, nil, 12.0},
			{"Cabo", 0.5, nil, 1e-05},
		},
		Formats: map[string]string{
			"B4": "dd/mm/yyyy",
			"B5": "hh:mm",
		},
	})

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Monitor", "2024-03-15", "True", "0.30000000000000004"},
		{"CPU", "2024-03-15 13:45:30", "False", "1.5"},
		{"Mouse", "2024-03-15", "", "12"},
		{"Cabo", "12:00:00", "", "1e-05"},
	}, table.Rows)
}

func TestLoadRawValues(t *testing.T) {
	path := testutil.WriteWorkbook(t, "formats.xlsx", testutil.Sheet{
		Name: "Sheet1",
		Rows: [][]interface{}{
			{"price", "bought", "ok"},
			{1.5, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		},
		Formats: map[string]string{"A2": "0.00"},
	})

	tests := []struct {
		name string
		raw  bool
		want []string
	}{
		{"Formatted", false, []string{"1.50", "2024-03-15", "True"}},
		{"Raw", true, []string{"1.5", "45366", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := LoadWithOptions(path, Options{RawValues: tt.raw})
			require.NoError(t, err)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, tt.want, table.Rows[0])
		})
	}
}

func TestLoadWithOptionsSelectsSheet(t *testing.T) {
	path := testutil.WriteWorkbook(t, "multi.xlsx",
		testutil.Sheet{Name: "First", Rows: [][]interface{}{{"a"}, {1}}},
		testutil.Sheet{Name: "EDUCAR", Rows: [][]interface{}{{"Escolas"}, {"Escola A"}}},
	)

	tests := []struct {
		name     string
		selector string
		want     string
	}{
		{"Default is first sheet", "", "First"},
		{"By name", "EDUCAR", "EDUCAR"},
		{"By index", "1", "EDUCAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := LoadWithOptions(path, Options{Sheet: tt.selector})
			require.NoError(t, err)
			assert.Equal(t, tt.want, table.SheetName)
		})
	}

	_, err := LoadWithOptions(path, Options{Sheet: "Missing"})
	assert.ErrorContains(t, err, `sheet "Missing" not found`)

	_, err = LoadWithOptions(path, Options{Sheet: "7"})
	assert.ErrorContains(t, err, "out of range")
}

func TestLoadEmptySheet(t *testing.T) {
	path := testutil.WriteWorkbook(t, "empty.xlsx", testutil.Sheet{Name: "Sheet1"})

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrNoColumns))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestListSheets(t *testing.T) {
	path := testutil.WriteWorkbook(t, "multi.xlsx",
		testutil.Sheet{Name: "One"},
		testutil.Sheet{Name: "Two"},
	)

	sheets, err := ListSheets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, sheets)
}

func TestDedupeNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"No duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"Repeated", []string{"a", "a", "a"}, []string{"a", "a.1", "a.2"}},
		{"Suffix already taken", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.1.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupeNames(tt.input))
		})
	}
}
