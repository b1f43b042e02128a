package paramtable

import "github.com/ukaji3/paramtable-go/pkg/paramtable/expr"

// Synthesize produces one equation statement per column for the selected
// row, in column order, and replaces any previously synthesized statements.
//
// Synthesis is gated globally: if any column name, unit, or grid cell
// anywhere holds a parse error, the result is empty. Blank cells contribute
// no statement. Each remaining cell is combined as name "=" value unit and
// parsed into the column's scratch field; a combine that fails to parse
// records its error there and contributes no statement.
func (t *Table) Synthesize() []expr.Statement {
	t.statements = nil

	if len(t.rows) == 0 || t.HasParseError() {
		return nil
	}

	row := t.rows[t.selected]
	var out []expr.Statement
	for c := range t.columns {
		column := &t.columns[c]
		cell := &row[c]
		if cell.Blank() {
			continue
		}

		composite := column.Name.Text + "=" + cell.Text + column.Unit.Text
		column.Combined.Kind = expr.KindExpression
		column.Combined.SetText(composite, t.engine)
		if column.Combined.Statement != nil {
			out = append(out, column.Combined.Statement)
		}
	}

	t.statements = out
	return out
}

// Statements returns the result of the most recent synthesis.
func (t *Table) Statements() []expr.Statement {
	return t.statements
}
