// Package expr provides expression fields for table cells and the engine
// interface used to parse their text into validated statements.
package expr

import (
	"fmt"
	"regexp"
)

// Kind classifies the role of an expression field.
type Kind string

const (
	// KindParameter marks a column-name field.
	KindParameter Kind = "parameter"
	// KindUnits marks a column-unit field.
	KindUnits Kind = "units"
	// KindExpression marks a row-value field for a column without units.
	KindExpression Kind = "expression"
	// KindNumber marks a row-value field for a column with declared units.
	// Such values are constrained to be non-symbolic numeric quantities.
	KindNumber Kind = "number"
)

// Statement is the resolved, engine-validated form of a parsed expression.
// Its concrete type is owned by the Engine that produced it.
type Statement interface {
	// Source returns the expression text the statement was parsed from.
	Source() string
}

// Engine turns expression text into validated statements. Implementations
// dispatch on the field kind; parse failures are reported as *ParseError.
type Engine interface {
	Parse(text string, kind Kind) (Statement, error)
}

// ParseError represents a failed parse of a single expression field.
type ParseError struct {
	Text string
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s expression %q: %v", e.Kind, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// spacingRegex matches whitespace and LaTeX spacing commands, the markup a
// field may contain without holding any actual content.
var spacingRegex = regexp.MustCompile(`\\(?:,|:|;|!|quad\b|qquad\b)|\s+`)

// StripSpacing removes whitespace and LaTeX spacing markup from s.
func StripSpacing(s string) string {
	return spacingRegex.ReplaceAllString(s, "")
}

// Field is a text slot holding an unparsed expression plus its parse status
// and, when the last parse succeeded, the resolved statement.
type Field struct {
	Text      string
	Kind      Kind
	Pending   bool
	Err       error
	Statement Statement
}

// NewField returns an empty field of the given kind, pending parse.
func NewField(kind Kind) Field {
	return Field{Kind: kind, Pending: true}
}

// NewFieldText returns a field holding text that has not been parsed yet.
func NewFieldText(kind Kind, text string) Field {
	return Field{Kind: kind, Text: text, Pending: true}
}

// Blank reports whether the field holds no content once spacing markup is
// stripped.
func (f *Field) Blank() bool {
	return StripSpacing(f.Text) == ""
}

// HasError reports whether the last parse of this field failed.
func (f *Field) HasError() bool {
	return f.Err != nil
}

// SetText replaces the field text and reparses it through the engine.
func (f *Field) SetText(text string, eng Engine) {
	f.Text = text
	f.Reparse(eng)
}

// Retype changes the field kind and reparses the existing text.
func (f *Field) Retype(kind Kind, eng Engine) {
	f.Kind = kind
	f.Reparse(eng)
}

// Reparse runs the engine over the current text. A blank field is valid and
// resolves to no statement; a failed parse records the error on the field
// rather than raising it, since a table with invalid cells is a normal,
// editable state.
func (f *Field) Reparse(eng Engine) {
	f.Pending = false
	f.Statement = nil
	if f.Blank() {
		f.Err = nil
		return
	}
	st, err := eng.Parse(f.Text, f.Kind)
	if err != nil {
		f.Err = err
		return
	}
	f.Err = nil
	f.Statement = st
}
