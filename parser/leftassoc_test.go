package parser

import (
	"errors"
	"testing"
)

func TestParseLeftAssoc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"1 + 2", "(+ 1 2)"},
		// Same-precedence chains group to the left.
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"(1)", "1"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"1 * (2 + 3)", "(* 1 (+ 2 3))"},
		{"1*2 + 3*(4+5)", "(+ (* 1 2) (* 3 (+ 4 5)))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseLeftAssoc(tt.input)
			if err != nil {
				t.Fatalf("ParseLeftAssoc: %v", err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLeftAssocRedundantParens(t *testing.T) {
	// Parenthesization that matches the grammar's own grouping adds no
	// structure: the printed trees are identical.
	plain, err := ParseLeftAssoc("1*2 + 3*(4+5)")
	if err != nil {
		t.Fatalf("ParseLeftAssoc: %v", err)
	}
	wrapped, err := ParseLeftAssoc("(1*2) + (3*(4+5))")
	if err != nil {
		t.Fatalf("ParseLeftAssoc: %v", err)
	}
	if plain.String() != wrapped.String() {
		t.Errorf("trees differ: %q vs %q", plain, wrapped)
	}
}

func TestParseLeftAssocParenErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		missing bool
	}{
		{"unclosed paren", "(1 + 2", false},
		{"unopened paren", "1 + 2)", true},
		{"empty parens", "()", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLeftAssoc(tt.input)
			var unbalanced *UnbalancedParensError
			if !errors.As(err, &unbalanced) {
				t.Fatalf("err = %v, want UnbalancedParensError", err)
			}
			if unbalanced.Missing != tt.missing {
				t.Errorf("Missing = %v, want %v", unbalanced.Missing, tt.missing)
			}
		})
	}
}

func TestParseLeftAssocErrors(t *testing.T) {
	t.Run("dangling operator", func(t *testing.T) {
		// The reversed stream starts with the operator, so the grammar runs
		// out of input looking for its left operand.
		_, err := ParseLeftAssoc("1 +")
		var invalid InputError
		if !errors.As(err, &invalid) {
			t.Fatalf("err = %v, want an InputError", err)
		}
	})

	t.Run("adjacent numbers", func(t *testing.T) {
		_, err := ParseLeftAssoc("1 2")
		var extra *ExtraTokensError
		if !errors.As(err, &extra) {
			t.Fatalf("err = %v, want ExtraTokensError", err)
		}
	})
}
