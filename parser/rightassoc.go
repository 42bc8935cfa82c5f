package parser

// ParseRightAssoc parses infix expressions with no precedence at all:
//
//	E -> N R
//	R -> ε | O E
//
// Every operator takes the whole rest of the input as its right operand, so
// chains group strictly to the right: "1 + 2 + 3" becomes (+ 1 (+ 2 3)).
func ParseRightAssoc(input string) (*Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	c := NewCursor(toks)
	node, err := parseRightExpr(c)
	if err != nil {
		return nil, err
	}
	if err := expectEnd(c); err != nil {
		return nil, err
	}
	return node, nil
}

func parseRightExpr(c *Cursor) (*Node, error) {
	tok := c.Peek()
	switch tok.Kind {
	case TokenNumber:
		c.Consume()
	case TokenEOF:
		return nil, &MissingTokensError{Position: tok.Pos}
	default:
		return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
	}
	left := Value(tok)

	if !c.Match(TokenOperator) {
		return left, nil
	}
	op := c.Peek()
	c.Consume()
	right, err := parseRightExpr(c)
	if err != nil {
		return nil, err
	}
	return Binary(op, left, right), nil
}
