package expr

import (
	"errors"
	"testing"
)

func newEngine(t *testing.T) *CELEngine {
	t.Helper()
	eng, err := NewCELEngine()
	if err != nil {
		t.Fatalf("NewCELEngine failed: %v", err)
	}
	return eng
}

func TestCELEngineParse(t *testing.T) {
	eng := newEngine(t)

	tests := []struct {
		name string
		text string
		kind Kind
		ok   bool
	}{
		{"identifier", "x", KindParameter, true},
		{"sum", "a+b", KindExpression, true},
		{"equation", "x=2", KindExpression, true},
		{"equation with unit", "x=2kg", KindExpression, true},
		{"unit symbol", "kg", KindUnits, true},
		{"numeric literal", "100", KindNumber, true},
		{"decimal literal", "-1.5", KindNumber, true},
		{"symbolic in number field", "a+b", KindNumber, false},
		{"unbalanced", "((", KindExpression, false},
		{"dangling operator", "a+", KindExpression, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := eng.Parse(tt.text, tt.kind)
			if tt.ok {
				if err != nil {
					t.Fatalf("Parse(%q) failed: %v", tt.text, err)
				}
				if st.Source() != tt.text {
					t.Errorf("Statement source = %q, expected %q", st.Source(), tt.text)
				}
				return
			}
			if err == nil {
				t.Fatalf("Parse(%q) should have failed", tt.text)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Expected *ParseError, got %T", err)
			}
		})
	}
}

func TestCELEngineSanitize(t *testing.T) {
	eng := newEngine(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"x=2", "x==2"},
		{"=2", "==2"},
		{"x==2", "x==2"},
		{"x!=2", "x!=2"},
		{"x>=2", "x>=2"},
		{"x<=2", "x<=2"},
		{"2kg", "2*kg"},
		{"x=2.5kg", "x==2.5*kg"},
	}

	for _, tt := range tests {
		if got := eng.sanitize(tt.input); got != tt.expected {
			t.Errorf("sanitize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
