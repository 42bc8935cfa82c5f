package parser

// ParseRecursive parses infix expressions by classic recursive descent with
// two precedence levels and no parentheses:
//
//	EXPR -> TERM ([+-] EXPR)?
//	TERM -> FACT ([*/] TERM)?
//	FACT -> NUM
//
// "*" and "/" bind tighter than "+" and "-", and chains within each class
// group to the right because the right operand recurses into the full rule.
func ParseRecursive(input string) (*Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	c := NewCursor(toks)
	node, err := parseRecExpr(c)
	if err != nil {
		return nil, err
	}
	if err := expectEnd(c); err != nil {
		return nil, err
	}
	return node, nil
}

func parseRecExpr(c *Cursor) (*Node, error) {
	left, err := parseRecTerm(c)
	if err != nil {
		return nil, err
	}
	if c.Match(TokenOperator) && (c.MatchLiteral("+") || c.MatchLiteral("-")) {
		op := c.Peek()
		c.Consume()
		right, err := parseRecExpr(c)
		if err != nil {
			return nil, err
		}
		return Binary(op, left, right), nil
	}
	return left, nil
}

func parseRecTerm(c *Cursor) (*Node, error) {
	left, err := parseRecFact(c)
	if err != nil {
		return nil, err
	}
	if c.Match(TokenOperator) && (c.MatchLiteral("*") || c.MatchLiteral("/")) {
		op := c.Peek()
		c.Consume()
		right, err := parseRecTerm(c)
		if err != nil {
			return nil, err
		}
		return Binary(op, left, right), nil
	}
	return left, nil
}

func parseRecFact(c *Cursor) (*Node, error) {
	tok := c.Peek()
	switch tok.Kind {
	case TokenNumber:
		c.Consume()
		return Value(tok), nil
	case TokenEOF:
		return nil, &MissingTokensError{Position: tok.Pos}
	default:
		return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
	}
}
