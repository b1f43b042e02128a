// Package sheet provides worksheet decoding and structure inference for
// building an option table from spreadsheet data of unknown shape.
package sheet

import (
	"errors"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook contains no worksheets to decode.
var ErrNoSheets = errors.New("workbook has no sheets")

// Sheet is a single worksheet as a jagged grid of loosely-typed cell values.
// A value is int64, float64, string, or nil for an empty cell.
type Sheet [][]interface{}

// DecodeWorkbookFile decodes the first worksheet of the xlsx file at path.
func DecodeWorkbookFile(path string) (Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeFirstSheet(f)
}

// DecodeWorkbook decodes the first worksheet of the xlsx workbook read from r.
func DecodeWorkbook(r io.Reader) (Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeFirstSheet(f)
}

func decodeFirstSheet(f *excelize.File) (Sheet, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheetList[0])
	if err != nil {
		return nil, err
	}

	result := make(Sheet, len(rows))
	for rowIdx, row := range rows {
		cells := make([]interface{}, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cells[colIdx] = parseValue(cellValue)
		}
		result[rowIdx] = cells
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// Defined reports whether v holds an actual value (not nil and not the
// empty string).
func Defined(v interface{}) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// Numeric reports whether v is a number or a string that parses as one.
// Undefined values are not numeric.
func Numeric(v interface{}) bool {
	switch n := v.(type) {
	case int64, float64, int, float32:
		return true
	case string:
		if n == "" {
			return false
		}
		_, err := strconv.ParseFloat(n, 64)
		return err == nil
	default:
		return false
	}
}

// Stringify converts a cell value to its text form. Undefined values become
// the empty string.
func Stringify(v interface{}) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	default:
		return ""
	}
}

// ColumnName returns the Excel-style name for a zero-based column index
// (A, B, ..., Z, AA, AB, ...).
func ColumnName(index int) string {
	name, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return ""
	}
	return name
}
