package expr

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/cel-go/common"
	"github.com/google/cel-go/common/ast"
	"github.com/google/cel-go/parser"
)

// sanitizersRegex holds compiled regular expressions used to transform
// equation syntax to a format compatible with the CEL parser.
//
// These transformations convert math notation (single '=', implicit
// multiplication between a number and a unit symbol) to CEL syntax
// ('==', explicit '*') before parsing.
type sanitizersRegex struct {
	equalsRegex    *regexp.Regexp // Matches bare "=" for conversion to "=="
	juxtaposeRegex *regexp.Regexp // Matches digit-letter juxtaposition for "*"
}

// CELEngine parses expression text with the CEL parser. It performs no type
// checking or evaluation; a statement is the parsed syntax tree plus the
// source text it came from.
type CELEngine struct {
	sanitizers *sanitizersRegex
}

// NewCELEngine creates a CEL-backed expression engine.
func NewCELEngine() (*CELEngine, error) {
	equalsRegex, err := regexp.Compile(`(^|[^=<>!])=([^=])`)
	if err != nil {
		return nil, err
	}

	juxtaposeRegex, err := regexp.Compile(`([0-9])\s*([A-Za-z_])`)
	if err != nil {
		return nil, err
	}

	return &CELEngine{
		sanitizers: &sanitizersRegex{
			equalsRegex:    equalsRegex,
			juxtaposeRegex: juxtaposeRegex,
		},
	}, nil
}

// sanitize transforms an equation string to CEL syntax.
//
// It performs the following transformations:
//   - "=" -> "==" (equation equality, without matching >=, <=, !=, ==)
//   - "2kg" -> "2*kg" (implicit multiplication of a quantity by a unit)
func (e *CELEngine) sanitize(text string) string {
	text = e.sanitizers.equalsRegex.ReplaceAllString(text, "$1==$2")
	text = e.sanitizers.juxtaposeRegex.ReplaceAllString(text, "$1*$2")
	return text
}

// Parse parses expression text according to the field kind. Number fields
// must hold a plain numeric literal; every other kind accepts any expression
// the CEL grammar admits.
func (e *CELEngine) Parse(text string, kind Kind) (Statement, error) {
	source := StripSpacing(text)

	if kind == KindNumber {
		if _, err := strconv.ParseFloat(source, 64); err != nil {
			return nil, &ParseError{
				Text: text,
				Kind: kind,
				Err:  fmt.Errorf("not a numeric value"),
			}
		}
	}

	sanitized := e.sanitize(source)

	p, err := parser.NewParser()
	if err != nil {
		return nil, &ParseError{Text: text, Kind: kind, Err: err}
	}

	parsed, errors := p.Parse(common.NewTextSource(sanitized))
	if errors != nil && len(errors.GetErrors()) > 0 {
		return nil, &ParseError{
			Text: text,
			Kind: kind,
			Err:  fmt.Errorf("%s", errors.ToDisplayString()),
		}
	}

	return &celStatement{source: text, tree: parsed}, nil
}

// celStatement is the CEL engine's resolved statement form.
type celStatement struct {
	source string
	tree   *ast.AST
}

func (s *celStatement) Source() string {
	return s.source
}
