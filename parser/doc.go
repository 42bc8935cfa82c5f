// Package parser parses arithmetic expressions into binary syntax trees.
//
// # Overview
//
// The package bundles one tokenizer with a family of parsing algorithms.
// Each variant accepts a different notation, or the same notation with a
// different grouping discipline, and all of them share the token, cursor,
// and tree types:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│  Tokenize   │────▶│   Cursor    │
//	│  (string)   │     │  ([]Token)  │     │ (lookahead) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │ parse func  │
//	                                        │   (*Node)   │
//	                                        └─────────────┘
//
// # Variants
//
//	// Prefix notation, binary operators only.
//	// Grammar: E -> N | O E E
//	func ParsePrefix(input string) (*Node, error)
//
//	// Postfix notation via an explicit operand stack.
//	// Grammar: E -> N | E E O
//	func ParsePostfix(input string) (*Node, error)
//
//	// Infix with no precedence; every chain groups to the right.
//	// Grammar: E -> N R, R -> ε | O E
//	func ParseRightAssoc(input string) (*Node, error)
//
//	// Infix with two precedence levels, no parens, right grouping.
//	// Grammar: EXPR -> TERM ([+-] EXPR)?, TERM -> FACT ([*/] TERM)?
//	func ParseRecursive(input string) (*Node, error)
//
//	// Infix with precedence, parens, and left grouping, obtained by
//	// parsing the reversed token stream and mirroring the tree.
//	func ParseLeftAssoc(input string) (*Node, error)
//
//	// Precedence climbing: unary minus, right-associative "^", parens.
//	func ParseClimb(input string) (*Node, error)
//
// Lookup maps selector strings such as "prefix" or "infix" to these
// functions for callers that choose a grammar at run time.
//
// # Errors
//
// Every failure is a typed error implementing InputError, so callers can
// tell an unbalanced paren from a stack underflow with errors.As. Parsing
// either consumes the whole input or fails; there are no partial results.
//
// # Thread Safety
//
// Parse calls share no state. Each invocation tokenizes its own input and
// walks its own cursor, so independent parses may run concurrently.
//
// # Example Usage
//
//	node, err := parser.ParseClimb("1^-2^3*4 + -5*6*-7")
//	if err != nil {
//	    // one of the InputError kinds
//	}
//	fmt.Println(node) // (+ (* (^ 1 (^ (- 2) 3)) 4) (* (* (- 5) 6) (- 7)))
package parser
