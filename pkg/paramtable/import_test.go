package paramtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/paramtable-go/pkg/paramtable/expr"
	"github.com/ukaji3/paramtable-go/pkg/paramtable/sheet"
)

func TestImportHeadersAndUnits(t *testing.T) {
	table := newTestTable(t)

	err := table.ImportSheet(sheet.Sheet{
		{"Label", "x", "y"},
		{"", "m", "kg"},
		{"a", int64(1), int64(2)},
		{"b", int64(3), int64(4)},
	})
	require.NoError(t, err)

	require.Equal(t, 2, table.RowCount())
	require.Equal(t, 2, table.ColumnCount())

	first, err := table.Label(0)
	require.NoError(t, err)
	assert.Equal(t, "a", first.Text)
	second, err := table.Label(1)
	require.NoError(t, err)
	assert.Equal(t, "b", second.Text)

	colX, err := table.Column(0)
	require.NoError(t, err)
	assert.Equal(t, "x", colX.Name.Text)
	assert.Equal(t, "m", colX.Unit.Text)
	colY, err := table.Column(1)
	require.NoError(t, err)
	assert.Equal(t, "y", colY.Name.Text)
	assert.Equal(t, "kg", colY.Unit.Text)

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell, err := table.Cell(r, c)
			require.NoError(t, err)
			assert.Equal(t, expr.KindNumber, cell.Kind)
			assert.True(t, cell.Pending, "imported cells stay unparsed")
		}
	}

	cell, err := table.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "3", cell.Text)

	assert.Equal(t, 0, table.SelectedRow())
	assert.False(t, table.DocumentationEnabled())
	checkShape(t, table)
}

func TestImportWithoutHeaders(t *testing.T) {
	table := newTestTable(t)

	err := table.ImportSheet(sheet.Sheet{
		{int64(1), int64(2), int64(3)},
		{int64(4), int64(5), int64(6)},
	})
	require.NoError(t, err)

	require.Equal(t, 2, table.RowCount())
	require.Equal(t, 2, table.ColumnCount())

	colA, err := table.Column(0)
	require.NoError(t, err)
	assert.Equal(t, "A", colA.Name.Text)
	assert.True(t, colA.Unit.Blank())
	assert.Equal(t, expr.KindExpression, colA.CellKind())
	colB, err := table.Column(1)
	require.NoError(t, err)
	assert.Equal(t, "B", colB.Name.Text)

	// Column 0 of the data feeds the row labels.
	first, err := table.Label(0)
	require.NoError(t, err)
	assert.Equal(t, "1", first.Text)

	cell, err := table.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "6", cell.Text)
	checkShape(t, table)
}

func TestImportErrorsLeaveModelUntouched(t *testing.T) {
	table := newTestTable(t)
	require.NoError(t, table.SetCell(0, 0, "keep"))

	tests := []struct {
		name     string
		sheet    sheet.Sheet
		expected error
	}{
		{"empty", sheet.Sheet{}, sheet.ErrEmptySheet},
		{"single column", sheet.Sheet{{"h1"}}, sheet.ErrTooFewColumns},
		{"no data", sheet.Sheet{{"Label", "x"}}, sheet.ErrNoDataRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := table.ImportSheet(tt.sheet)
			require.ErrorIs(t, err, tt.expected)

			assert.Equal(t, 2, table.RowCount())
			assert.Equal(t, 2, table.ColumnCount())
			cell, err := table.Cell(0, 0)
			require.NoError(t, err)
			assert.Equal(t, "keep", cell.Text)
		})
	}
}

func TestImportSynthesizesMissingNames(t *testing.T) {
	table := newTestTable(t)

	err := table.ImportSheet(sheet.Sheet{
		{"Label", "x", " ", "z"},
		{nil, int64(1), int64(2), int64(3)},
		{"b", int64(4), int64(5), int64(6)},
	})
	require.NoError(t, err)

	// A blank label cell falls back to the row counter.
	first, err := table.Label(0)
	require.NoError(t, err)
	assert.Equal(t, "Option 1", first.Text)
	second, err := table.Label(1)
	require.NoError(t, err)
	assert.Equal(t, "b", second.Text)

	// A blank header falls back to the column counter; the counter runs per
	// column, so the fallback name carries the column's own number.
	middle, err := table.Column(1)
	require.NoError(t, err)
	assert.Equal(t, "Var2", middle.Name.Text)
	checkShape(t, table)
}

func TestImportResetsCounters(t *testing.T) {
	table := newTestTable(t)
	table.AddRow()
	table.AddRow() // counter well past the import's row count

	err := table.ImportSheet(sheet.Sheet{
		{"Label", "x"},
		{"a", int64(1)},
		{"b", int64(2)},
	})
	require.NoError(t, err)

	table.AddRow()
	label, err := table.Label(2)
	require.NoError(t, err)
	assert.Equal(t, RowLabel{ID: 3, Text: "Option 3"}, label)

	table.AddColumn()
	col, err := table.Column(1)
	require.NoError(t, err)
	assert.Equal(t, "Var2", col.Name.Text)
	checkShape(t, table)
}

func TestImportDisablesDocumentation(t *testing.T) {
	table := newTestTable(t)
	table.EnableDocumentation()
	require.NoError(t, table.SetDocumentation(0, []byte(`{"note":"x"}`)))

	err := table.ImportSheet(sheet.Sheet{
		{"Label", "x"},
		{"a", int64(1)},
	})
	require.NoError(t, err)

	assert.False(t, table.DocumentationEnabled())
	checkShape(t, table)
}
