package sheet

import "errors"

// ErrEmptySheet indicates the worksheet contains no rows.
var ErrEmptySheet = errors.New("sheet has no rows")

// ErrTooFewColumns indicates the worksheet is too narrow: a label column and
// at least one data column are required.
var ErrTooFewColumns = errors.New("sheet needs a label column and at least one data column")

// ErrNoDataRows indicates the worksheet holds headers but no data rows.
var ErrNoDataRows = errors.New("sheet has no data rows")

// Layout describes the inferred structure of a worksheet: where the data
// begins and what the header and unit rows contain.
type Layout struct {
	// Columns is the width of the longest row.
	Columns int
	// HasHeaders reports whether row 0 was classified as a header row.
	HasHeaders bool
	// Headers holds one name per column. Synthesized Excel-style names when
	// no header row was found.
	Headers []string
	// HasUnits reports whether row 1 was classified as a units row.
	HasUnits bool
	// Units holds one unit per column; all empty without a units row.
	Units []string
	// DataStart is the index of the first data row.
	DataStart int
}

// Infer detects the structure of a worksheet.
//
// Row 0 is a header row iff at least one of its values is defined and not
// numeric. When headers are present, row 1 is a units row under the same
// test. A units row whose every value happens to look numeric (bare
// multipliers, say) is therefore classified as data; that ambiguity is
// inherent to the sniffing and deliberately kept.
func Infer(s Sheet) (Layout, error) {
	if len(s) == 0 {
		return Layout{}, ErrEmptySheet
	}

	longest := 0
	for _, row := range s {
		if len(row) > longest {
			longest = len(row)
		}
	}
	if longest < 2 {
		return Layout{}, ErrTooFewColumns
	}

	layout := Layout{
		Columns: longest,
		Headers: make([]string, longest),
		Units:   make([]string, longest),
	}

	layout.HasHeaders = rowLooksTextual(s[0])
	if !layout.HasHeaders {
		// Column 0 carries row labels and keeps no name; the data columns
		// take Excel-style names starting at A.
		for j := 1; j < longest; j++ {
			layout.Headers[j] = ColumnName(j - 1)
		}
		layout.DataStart = 0
	} else {
		for j, v := range s[0] {
			layout.Headers[j] = Stringify(v)
		}
		layout.DataStart = 1
		if len(s) > 1 && rowLooksTextual(s[1]) {
			layout.HasUnits = true
			for j, v := range s[1] {
				layout.Units[j] = Stringify(v)
			}
			layout.DataStart = 2
		}
	}

	if layout.DataStart >= len(s) {
		return Layout{}, ErrNoDataRows
	}

	return layout, nil
}

// rowLooksTextual reports whether at least one value in the row is defined
// and not parsable as a number.
func rowLooksTextual(row []interface{}) bool {
	for _, v := range row {
		if Defined(v) && !Numeric(v) {
			return true
		}
	}
	return false
}
