package paramtable

import (
	"encoding/json"

	deepcopy "github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/paramtable-go/pkg/paramtable/expr"
)

// Snapshot is the persisted form of a table: label texts, id counters, raw
// expression texts, and per-row documentation blobs. Expression texts are
// stored unparsed; parse state and synthesized statements are not persisted.
type Snapshot struct {
	RowLabels           []string          `json:"rowLabels"`
	NextRowLabelID      int               `json:"nextRowLabelId"`
	ParameterLatexs     []string          `json:"parameterLatexs"`
	NextParameterID     int               `json:"nextParameterId"`
	ParameterUnitLatexs []string          `json:"parameterUnitLatexs"`
	RhsLatexs           [][]string        `json:"rhsLatexs"`
	SelectedRow         int               `json:"selectedRow"`
	HideUnselected      bool              `json:"hideUnselected"`
	RowJsons            []json.RawMessage `json:"rowJsons"`
}

// Snapshot exports the table state. Documentation blobs are deep-copied so
// the snapshot does not alias live model state.
func (t *Table) Snapshot() (*Snapshot, error) {
	s := &Snapshot{
		NextRowLabelID:  t.nextRowID,
		NextParameterID: t.nextColumnID,
		SelectedRow:     t.selected,
		HideUnselected:  t.hideUnselected,
	}

	s.RowLabels = make([]string, len(t.labels))
	for i, label := range t.labels {
		s.RowLabels[i] = label.Text
	}

	s.ParameterLatexs = make([]string, len(t.columns))
	s.ParameterUnitLatexs = make([]string, len(t.columns))
	for c := range t.columns {
		s.ParameterLatexs[c] = t.columns[c].Name.Text
		s.ParameterUnitLatexs[c] = t.columns[c].Unit.Text
	}

	s.RhsLatexs = make([][]string, len(t.rows))
	for r := range t.rows {
		s.RhsLatexs[r] = make([]string, len(t.rows[r]))
		for c := range t.rows[r] {
			s.RhsLatexs[r][c] = t.rows[r][c].Text
		}
	}

	if t.docsEnabled {
		if err := deepcopy.Copy(&s.RowJsons, t.docs); err != nil {
			return nil, err
		}
	} else {
		s.RowJsons = []json.RawMessage{}
	}

	return s, nil
}

// Restore rehydrates the table from a snapshot, replacing any previous
// contents. Fields are rebuilt pending, with cell kinds derived from unit
// blankness; run ParseAll to bring the model to a parsed state.
//
// Snapshots do not carry per-row ids, so rows are re-numbered 1..n and the
// id counter resumes at the persisted value or past the new ids, whichever
// is larger, keeping ids strictly below the counter.
func (t *Table) Restore(s *Snapshot) error {
	cols := len(s.ParameterLatexs)
	rows := len(s.RowLabels)

	if len(s.ParameterUnitLatexs) != cols || len(s.RhsLatexs) != rows {
		return ErrInvalidSnapshot
	}
	for _, row := range s.RhsLatexs {
		if len(row) != cols {
			return ErrInvalidSnapshot
		}
	}
	if n := len(s.RowJsons); n != 0 && n != rows {
		return ErrInvalidSnapshot
	}
	if s.SelectedRow < 0 || s.SelectedRow >= max(rows, 1) {
		return ErrInvalidSnapshot
	}

	labels := make([]RowLabel, rows)
	for i, text := range s.RowLabels {
		labels[i] = RowLabel{ID: i + 1, Text: text}
	}

	columns := make([]Column, cols)
	for c := range columns {
		columns[c] = Column{
			Name:     expr.NewFieldText(expr.KindParameter, s.ParameterLatexs[c]),
			Unit:     expr.NewFieldText(expr.KindUnits, s.ParameterUnitLatexs[c]),
			Combined: expr.NewField(expr.KindExpression),
		}
	}

	grid := make([][]expr.Field, rows)
	for r := range grid {
		grid[r] = make([]expr.Field, cols)
		for c := range grid[r] {
			grid[r][c] = expr.NewFieldText(columns[c].CellKind(), s.RhsLatexs[r][c])
		}
	}

	var docs []json.RawMessage
	docsEnabled := len(s.RowJsons) > 0
	if docsEnabled {
		if err := deepcopy.Copy(&docs, s.RowJsons); err != nil {
			return err
		}
	}

	t.labels = labels
	t.nextRowID = max(s.NextRowLabelID, rows+1)
	t.columns = columns
	t.nextColumnID = max(s.NextParameterID, cols+1)
	t.rows = grid
	t.selected = s.SelectedRow
	t.hideUnselected = s.HideUnselected
	t.docsEnabled = docsEnabled
	t.docs = docs
	t.statements = nil

	return nil
}
