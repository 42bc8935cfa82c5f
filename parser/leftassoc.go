package parser

// ParseLeftAssoc parses infix expressions with two precedence levels,
// parentheses, and left associativity:
//
//	EXPR -> TERM ([+-] EXPR)?
//	TERM -> FACT ([*/] TERM)?
//	FACT -> NUM | ")" EXPR "("
//
// The grammar runs over the token stream in reverse, so the right-recursive
// rules group what is syntactically leftmost innermost, and paren tokens
// trade roles: a source ")" opens a sub-expression and "(" closes it. The
// finished tree is then mirrored as a whole, which restores source operand
// order and yields left-leaning chains for same-precedence operators.
func ParseLeftAssoc(input string) (*Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	c := NewReversedCursor(toks)
	node, err := parseLeftExpr(c)
	if err != nil {
		return nil, err
	}
	if tok := c.Peek(); tok.Kind != TokenEOF {
		if tok.Kind == TokenLParen || tok.Kind == TokenRParen {
			return nil, &UnbalancedParensError{Position: tok.Pos, Paren: tok.Literal}
		}
		return nil, &ExtraTokensError{Position: tok.Pos, Got: tok}
	}
	node.Mirror()
	return node, nil
}

func parseLeftExpr(c *Cursor) (*Node, error) {
	left, err := parseLeftTerm(c)
	if err != nil {
		return nil, err
	}
	if c.Match(TokenOperator) && (c.MatchLiteral("+") || c.MatchLiteral("-")) {
		op := c.Peek()
		c.Consume()
		right, err := parseLeftExpr(c)
		if err != nil {
			return nil, err
		}
		return Binary(op, left, right), nil
	}
	return left, nil
}

func parseLeftTerm(c *Cursor) (*Node, error) {
	left, err := parseLeftFact(c)
	if err != nil {
		return nil, err
	}
	if c.Match(TokenOperator) && (c.MatchLiteral("*") || c.MatchLiteral("/")) {
		op := c.Peek()
		c.Consume()
		right, err := parseLeftTerm(c)
		if err != nil {
			return nil, err
		}
		return Binary(op, left, right), nil
	}
	return left, nil
}

func parseLeftFact(c *Cursor) (*Node, error) {
	tok := c.Peek()
	switch tok.Kind {
	case TokenNumber:
		c.Consume()
		return Value(tok), nil
	case TokenRParen:
		// Source close paren, which opens a sub-expression in reverse.
		c.Consume()
		node, err := parseLeftExpr(c)
		if err != nil {
			return nil, err
		}
		if !c.Match(TokenLParen) {
			at := c.Peek()
			return nil, &UnbalancedParensError{Position: at.Pos, Paren: "(", Missing: true}
		}
		c.Consume()
		return node, nil
	case TokenLParen:
		return nil, &UnbalancedParensError{Position: tok.Pos, Paren: tok.Literal}
	case TokenEOF:
		return nil, &MissingTokensError{Position: tok.Pos}
	default:
		return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
	}
}
