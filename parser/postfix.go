package parser

// ParsePostfix parses a postfix-notation expression:
//
//	E -> N | E E O
//
// The parser is a stack automaton, not recursive descent: numbers push
// value nodes, operators pop two operands and push the combined operation.
// The operand pushed earlier becomes the left child.
func ParsePostfix(input string) (*Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	c := NewCursor(toks)

	var stack []*Node
	for {
		tok := c.Peek()
		if tok.Kind == TokenEOF {
			break
		}
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, Value(tok))
		case TokenOperator:
			if len(stack) < 2 {
				return nil, &MissingArgumentsError{Position: tok.Pos, Op: tok}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, Binary(tok, left, right))
		default:
			return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
		}
		c.Consume()
	}

	switch len(stack) {
	case 0:
		return nil, &MissingTokensError{Position: c.Peek().Pos}
	case 1:
		return stack[0], nil
	default:
		// More than one finished subtree means the input held expressions
		// with no operator to join them.
		extra := stack[1]
		return nil, &ExtraTokensError{Position: extra.Tok.Pos, Got: extra.Tok}
	}
}
