package parser

// ParsePrefix parses a prefix-notation expression:
//
//	E -> N | O E E
//
// Operators are binary only; there is no unary minus in this grammar.
func ParsePrefix(input string) (*Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	c := NewCursor(toks)
	node, err := parsePrefixExpr(c)
	if err != nil {
		return nil, err
	}
	if err := expectEnd(c); err != nil {
		return nil, err
	}
	return node, nil
}

func parsePrefixExpr(c *Cursor) (*Node, error) {
	tok := c.Peek()
	switch tok.Kind {
	case TokenNumber:
		c.Consume()
		return Value(tok), nil
	case TokenOperator:
		c.Consume()
		left, err := parsePrefixExpr(c)
		if err != nil {
			return nil, err
		}
		right, err := parsePrefixExpr(c)
		if err != nil {
			return nil, err
		}
		return Binary(tok, left, right), nil
	case TokenEOF:
		return nil, &MissingTokensError{Position: tok.Pos}
	default:
		return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
	}
}
