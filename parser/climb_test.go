package parser

import (
	"errors"
	"testing"
)

func TestParseClimb(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"1 + 2", "(+ 1 2)"},
		// Left-associative chains fold left.
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		// Exponentiation is right-associative.
		{"1^2^3", "(^ 1 (^ 2 3))"},
		// Unary minus binds tighter than any binary operator.
		{"-1 + 2", "(+ (- 1) 2)"},
		{"-1^2", "(^ (- 1) 2)"},
		{"1 = 2 + 3", "(= 1 (+ 2 3))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"1*2 + 3*(4+5)", "(+ (* 1 2) (* 3 (+ 4 5)))"},
		{"1^-2^3*4 + -5*6*-7", "(+ (* (^ 1 (^ (- 2) 3)) 4) (* (* (- 5) 6) (- 7)))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseClimb(tt.input)
			if err != nil {
				t.Fatalf("ParseClimb: %v", err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseClimbRedundantParens(t *testing.T) {
	plain, err := ParseClimb("1^-2^3*4 + -5*6*-7")
	if err != nil {
		t.Fatalf("ParseClimb: %v", err)
	}
	wrapped, err := ParseClimb("((1^((-2)^3))*4) + (((-5)*6)*-7)")
	if err != nil {
		t.Fatalf("ParseClimb: %v", err)
	}
	if plain.String() != wrapped.String() {
		t.Errorf("trees differ: %q vs %q", plain, wrapped)
	}
}

func TestParseClimbAgreesWithLeftAssoc(t *testing.T) {
	inputs := []string{
		"1*2 + 3*(4+5)",
		"(1*2) + (3*(4+5))",
		"1 - 2 - 3",
		"1 + 2 * 3 - 4",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			left, err := ParseLeftAssoc(input)
			if err != nil {
				t.Fatalf("ParseLeftAssoc: %v", err)
			}
			climbed, err := ParseClimb(input)
			if err != nil {
				t.Fatalf("ParseClimb: %v", err)
			}
			if left.String() != climbed.String() {
				t.Errorf("parsers disagree: leftassoc %q, climb %q", left, climbed)
			}
		})
	}
}

func TestParseClimbErrors(t *testing.T) {
	t.Run("dangling operator", func(t *testing.T) {
		_, err := ParseClimb("1 +")
		var missing *MissingTokensError
		if !errors.As(err, &missing) {
			t.Fatalf("err = %v, want MissingTokensError", err)
		}
	})

	t.Run("unclosed paren", func(t *testing.T) {
		_, err := ParseClimb("(1 + 2")
		var unbalanced *UnbalancedParensError
		if !errors.As(err, &unbalanced) {
			t.Fatalf("err = %v, want UnbalancedParensError", err)
		}
		if !unbalanced.Missing {
			t.Error("Missing = false, want true")
		}
	})

	t.Run("unopened paren", func(t *testing.T) {
		_, err := ParseClimb("1 + 2)")
		var unbalanced *UnbalancedParensError
		if !errors.As(err, &unbalanced) {
			t.Fatalf("err = %v, want UnbalancedParensError", err)
		}
		if unbalanced.Missing {
			t.Error("Missing = true, want false")
		}
	})

	t.Run("binary operator as primary", func(t *testing.T) {
		_, err := ParseClimb("* 1 2")
		var invalid *InvalidTokenError
		if !errors.As(err, &invalid) {
			t.Fatalf("err = %v, want InvalidTokenError", err)
		}
	})
}
