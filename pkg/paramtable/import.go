package paramtable

import (
	"fmt"
	"strings"

	"github.com/ukaji3/paramtable-go/pkg/paramtable/expr"
	"github.com/ukaji3/paramtable-go/pkg/paramtable/sheet"
)

// ImportSheet rebuilds the whole table from a decoded worksheet, replacing
// any previous contents. Structure inference errors are raised before
// anything is touched, so a failed import leaves the model unchanged.
//
// Column 0 carries row labels; blanks there become "Option {n}". Header
// columns with blank names become "Var{n}". Both counters restart at 1 and
// become the post-import id counters. No expression parsing happens here:
// every rebuilt field is left pending until edited or ParseAll runs.
func (t *Table) ImportSheet(s sheet.Sheet) error {
	layout, err := sheet.Infer(s)
	if err != nil {
		return err
	}

	labels := make([]RowLabel, 0, len(s)-layout.DataStart)
	nextRow := 1
	for r := layout.DataStart; r < len(s); r++ {
		text := ""
		if len(s[r]) > 0 {
			text = sheet.Stringify(s[r][0])
		}
		if text == "" {
			text = fmt.Sprintf("Option %d", nextRow)
		}
		labels = append(labels, RowLabel{ID: nextRow, Text: text})
		nextRow++
	}

	columns := make([]Column, 0, layout.Columns-1)
	nextColumn := 1
	for c := 1; c < layout.Columns; c++ {
		name := layout.Headers[c]
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Var%d", nextColumn)
		}
		columns = append(columns, Column{
			Name:     expr.NewFieldText(expr.KindParameter, name),
			Unit:     expr.NewFieldText(expr.KindUnits, layout.Units[c]),
			Combined: expr.NewField(expr.KindExpression),
		})
		nextColumn++
	}

	rows := make([][]expr.Field, 0, len(labels))
	for r := layout.DataStart; r < len(s); r++ {
		row := make([]expr.Field, len(columns))
		for c := range columns {
			text := ""
			if src := c + 1; src < len(s[r]) {
				text = sheet.Stringify(s[r][src])
			}
			row[c] = expr.NewFieldText(columns[c].CellKind(), text)
		}
		rows = append(rows, row)
	}

	t.labels = labels
	t.nextRowID = nextRow
	t.columns = columns
	t.nextColumnID = nextColumn
	t.rows = rows
	t.selected = 0
	t.docsEnabled = false
	t.docs = nil
	t.statements = nil

	return nil
}
