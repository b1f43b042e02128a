package paramtable

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/paramtable-go/pkg/paramtable/expr"
)

// RowLabel identifies one option row. IDs are assigned from a per-table
// monotonic counter and never reused, so a row keeps its identity no matter
// how the table is reshaped around it.
type RowLabel struct {
	ID   int
	Text string
}

// Column is one parameter: its name, its unit, and a scratch field used to
// hold the combined equation during statement synthesis.
type Column struct {
	Name     expr.Field
	Unit     expr.Field
	Combined expr.Field
}

// CellKind returns the kind cells of this column take: number when the
// column declares a unit, expression otherwise.
func (c *Column) CellKind() expr.Kind {
	if c.Unit.Blank() {
		return expr.KindExpression
	}
	return expr.KindNumber
}

// Table owns the row labels, parameter columns, and the row-by-column grid
// of expression cells. The three collections stay index-aligned through
// every mutation.
type Table struct {
	engine expr.Engine

	labels    []RowLabel
	nextRowID int

	columns      []Column
	nextColumnID int

	// rows is the cell grid, row-major; rows[r][c] belongs to columns[c].
	rows [][]expr.Field

	selected       int
	hideUnselected bool

	docsEnabled bool
	docs        []json.RawMessage

	statements []expr.Statement
}

// New constructs a table seeded with two rows and two columns. The engine
// must be non-nil; every field edit parses through it.
func New(engine expr.Engine, opts Options) *Table {
	t := &Table{
		engine:       engine,
		nextRowID:    1,
		nextColumnID: 1,
	}
	if opts.ShouldEnableDocumentation() {
		t.docsEnabled = true
	}

	t.AddColumn()
	t.AddColumn()
	t.AddRow()
	t.AddRow()

	return t
}

// RowCount returns the number of option rows.
func (t *Table) RowCount() int {
	return len(t.labels)
}

// ColumnCount returns the number of parameter columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Label returns the row label at index.
func (t *Table) Label(index int) (RowLabel, error) {
	if index < 0 || index >= len(t.labels) {
		return RowLabel{}, ErrIndexOutOfRange
	}
	return t.labels[index], nil
}

// SetLabel replaces the text of the row label at index. The row keeps its id.
func (t *Table) SetLabel(index int, text string) error {
	if index < 0 || index >= len(t.labels) {
		return ErrIndexOutOfRange
	}
	t.labels[index].Text = text
	return nil
}

// Column returns a pointer to the column at index for inspection.
func (t *Table) Column(index int) (*Column, error) {
	if index < 0 || index >= len(t.columns) {
		return nil, ErrIndexOutOfRange
	}
	return &t.columns[index], nil
}

// Cell returns a pointer to the cell field at row, col for inspection.
func (t *Table) Cell(row, col int) (*expr.Field, error) {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.columns) {
		return nil, ErrIndexOutOfRange
	}
	return &t.rows[row][col], nil
}

// SelectedRow returns the index of the currently selected row.
func (t *Table) SelectedRow() int {
	return t.selected
}

// SelectRow changes the selected row.
func (t *Table) SelectRow(index int) error {
	if index < 0 || index >= len(t.labels) {
		return ErrIndexOutOfRange
	}
	t.selected = index
	return nil
}

// HideUnselected returns the display preference carried by the table.
func (t *Table) HideUnselected() bool {
	return t.hideUnselected
}

// SetHideUnselected sets the display preference carried by the table.
func (t *Table) SetHideUnselected(hide bool) {
	t.hideUnselected = hide
}

// AddRow appends a new option row labeled from the row id counter, with one
// blank cell per existing column. Cell kinds follow each column's current
// unit. Always succeeds.
func (t *Table) AddRow() {
	t.labels = append(t.labels, RowLabel{
		ID:   t.nextRowID,
		Text: fmt.Sprintf("Option %d", t.nextRowID),
	})
	t.nextRowID++

	if t.docsEnabled {
		t.docs = append(t.docs, nil)
	}

	row := make([]expr.Field, len(t.columns))
	for c := range t.columns {
		row[c] = expr.NewField(t.columns[c].CellKind())
	}
	t.rows = append(t.rows, row)
}

// AddColumn appends a new parameter column named from the column id counter,
// with a blank unit and one blank expression cell in every existing row.
// Always succeeds.
func (t *Table) AddColumn() {
	col := Column{
		Name:     expr.NewField(expr.KindParameter),
		Unit:     expr.NewField(expr.KindUnits),
		Combined: expr.NewField(expr.KindExpression),
	}
	col.Name.SetText(fmt.Sprintf("Var%d", t.nextColumnID), t.engine)
	t.nextColumnID++

	t.columns = append(t.columns, col)
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], expr.NewField(expr.KindExpression))
	}
}

// DeleteRow removes the row label, its documentation blob, and its grid row.
// If the selected row sat on or below the deleted one it slides up, unless
// it was already 0. Returns whether the selection moved, so callers can
// re-run synthesis.
func (t *Table) DeleteRow(index int) (bool, error) {
	if index < 0 || index >= len(t.labels) {
		return false, ErrIndexOutOfRange
	}

	t.labels = append(t.labels[:index], t.labels[index+1:]...)
	if t.docsEnabled {
		t.docs = append(t.docs[:index], t.docs[index+1:]...)
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)

	if t.selected >= index && t.selected > 0 {
		t.selected--
		return true, nil
	}
	return false, nil
}

// DeleteColumn removes the parameter column and the corresponding cell from
// every row. The selection is untouched; there is no selected column.
func (t *Table) DeleteColumn(index int) error {
	if index < 0 || index >= len(t.columns) {
		return ErrIndexOutOfRange
	}

	t.columns = append(t.columns[:index], t.columns[index+1:]...)
	for r := range t.rows {
		t.rows[r] = append(t.rows[r][:index], t.rows[r][index+1:]...)
	}
	return nil
}

// SetCell replaces the text of one grid cell and reparses it. The cell is
// retyped from its column's current unit first.
func (t *Table) SetCell(row, col int, text string) error {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.columns) {
		return ErrIndexOutOfRange
	}
	cell := &t.rows[row][col]
	cell.Kind = t.columns[col].CellKind()
	cell.SetText(text, t.engine)
	return nil
}

// SetColumnName replaces a column's name expression and reparses it.
func (t *Table) SetColumnName(col int, text string) error {
	if col < 0 || col >= len(t.columns) {
		return ErrIndexOutOfRange
	}
	t.columns[col].Name.SetText(text, t.engine)
	return nil
}

// SetUnit replaces a column's unit expression. The unit itself is reparsed,
// then every cell in the column flips between expression and number kind
// depending on the new unit's blankness and is reparsed with its existing
// text. Errors raised by that reparse are ordinary per-cell parse errors.
func (t *Table) SetUnit(col int, text string) error {
	if col < 0 || col >= len(t.columns) {
		return ErrIndexOutOfRange
	}

	column := &t.columns[col]
	column.Unit.SetText(text, t.engine)

	kind := column.CellKind()
	for r := range t.rows {
		t.rows[r][col].Retype(kind, t.engine)
	}
	return nil
}

// ParseAll runs the engine over every name, unit, and grid cell, recording
// per-field errors. Used after restoring or importing a model, which leave
// fields pending.
func (t *Table) ParseAll() {
	for c := range t.columns {
		t.columns[c].Name.Reparse(t.engine)
		t.columns[c].Unit.Reparse(t.engine)
	}
	for r := range t.rows {
		for c := range t.rows[r] {
			t.rows[r][c].Reparse(t.engine)
		}
	}
}

// HasParseError reports whether any column name, unit, or grid cell holds a
// recorded parse error. Combined scratch fields do not count.
func (t *Table) HasParseError() bool {
	for c := range t.columns {
		if t.columns[c].Name.HasError() || t.columns[c].Unit.HasError() {
			return true
		}
	}
	for r := range t.rows {
		for c := range t.rows[r] {
			if t.rows[r][c].HasError() {
				return true
			}
		}
	}
	return false
}

// DocumentationEnabled reports whether per-row annotation blobs are kept.
func (t *Table) DocumentationEnabled() bool {
	return t.docsEnabled
}

// EnableDocumentation starts keeping one annotation blob per row, initially
// empty. No-op when already enabled.
func (t *Table) EnableDocumentation() {
	if t.docsEnabled {
		return
	}
	t.docsEnabled = true
	t.docs = make([]json.RawMessage, len(t.labels))
}

// ClearDocumentation drops all annotation blobs and disables them.
func (t *Table) ClearDocumentation() {
	t.docsEnabled = false
	t.docs = nil
}

// Documentation returns the annotation blob for the row at index. Returns
// nil when documentation is disabled.
func (t *Table) Documentation(index int) (json.RawMessage, error) {
	if index < 0 || index >= len(t.labels) {
		return nil, ErrIndexOutOfRange
	}
	if !t.docsEnabled {
		return nil, nil
	}
	return t.docs[index], nil
}

// SetDocumentation replaces the annotation blob for the row at index.
// Enables documentation if it was disabled.
func (t *Table) SetDocumentation(index int, blob json.RawMessage) error {
	if index < 0 || index >= len(t.labels) {
		return ErrIndexOutOfRange
	}
	t.EnableDocumentation()
	t.docs[index] = blob
	return nil
}
