package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableHead(t *testing.T) {
	table := &Table{
		Columns: []string{"id"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}},
	}

	assert.Equal(t, 2, table.Head(2).NumRows())
	assert.Equal(t, 3, table.Head(5).NumRows())
	assert.Equal(t, 0, table.Head(-1).NumRows())
	assert.Equal(t, []string{"id"}, table.Head(1).Columns)
}

func TestTableColumn(t *testing.T) {
	table := &Table{
		Columns: []string{"id", "name"},
		Rows:    [][]string{{"1", "A"}, {"2"}},
	}

	values, ok := table.Column("name")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", ""}, values)

	_, ok = table.Column("missing")
	assert.False(t, ok)
}

func TestTableValidate(t *testing.T) {
	good := &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	assert.NoError(t, good.Validate())

	bad := &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}, {"3", "4", "5"}}}
	assert.EqualError(t, bad.Validate(), "row 2 has 3 cells, expected 2")
}
