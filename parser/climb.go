package parser

// Assoc is the associativity of an operator in the precedence table.
type Assoc int

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

type opInfo struct {
	prec  int
	assoc Assoc
}

// Fixed precedence table for the climbing parser. Unary minus outbinds
// every binary operator; exponentiation is the only right-associative one.
var (
	unaryOps = map[string]opInfo{
		"-": {prec: 4, assoc: AssocNone},
	}
	binaryOps = map[string]opInfo{
		"=": {prec: 0, assoc: AssocLeft},
		"+": {prec: 1, assoc: AssocLeft},
		"-": {prec: 1, assoc: AssocLeft},
		"*": {prec: 2, assoc: AssocLeft},
		"/": {prec: 2, assoc: AssocLeft},
		"^": {prec: 3, assoc: AssocRight},
	}
)

// ParseClimb parses infix expressions by precedence climbing:
//
//	EXPR -> E(0)
//	E(p) -> P {B E(q)}
//	P    -> U E(q) | "(" EXPR ")" | NUM
//
// The {B E(q)} loop continues while the next binary operator's precedence is
// at least p; q is the operator's precedence plus one for left-associative
// operators and the precedence itself for right-associative ones. This is
// the most general variant: unary minus, right-associative exponentiation,
// and parentheses all fall out of the one function.
func ParseClimb(input string) (*Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	c := NewCursor(toks)
	node, err := climb(c, 0)
	if err != nil {
		return nil, err
	}
	if tok := c.Peek(); tok.Kind != TokenEOF {
		if tok.Kind == TokenRParen || tok.Kind == TokenLParen {
			return nil, &UnbalancedParensError{Position: tok.Pos, Paren: tok.Literal}
		}
		return nil, &ExtraTokensError{Position: tok.Pos, Got: tok}
	}
	return node, nil
}

func climb(c *Cursor, minPrec int) (*Node, error) {
	left, err := climbPrimary(c)
	if err != nil {
		return nil, err
	}
	for {
		tok := c.Peek()
		if tok.Kind != TokenOperator {
			break
		}
		info, ok := binaryOps[tok.Literal]
		if !ok || info.prec < minPrec {
			break
		}
		c.Consume()
		nextPrec := info.prec
		if info.assoc == AssocLeft {
			nextPrec = info.prec + 1
		}
		right, err := climb(c, nextPrec)
		if err != nil {
			return nil, err
		}
		left = Binary(tok, left, right)
	}
	return left, nil
}

func climbPrimary(c *Cursor) (*Node, error) {
	tok := c.Peek()
	switch tok.Kind {
	case TokenOperator:
		info, ok := unaryOps[tok.Literal]
		if !ok {
			return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
		}
		c.Consume()
		child, err := climb(c, info.prec)
		if err != nil {
			return nil, err
		}
		return Unary(tok, child), nil
	case TokenLParen:
		c.Consume()
		node, err := climb(c, 0)
		if err != nil {
			return nil, err
		}
		if !c.Match(TokenRParen) {
			at := c.Peek()
			return nil, &UnbalancedParensError{Position: at.Pos, Paren: ")", Missing: true}
		}
		c.Consume()
		return node, nil
	case TokenRParen:
		return nil, &UnbalancedParensError{Position: tok.Pos, Paren: tok.Literal}
	case TokenNumber:
		c.Consume()
		return Value(tok), nil
	case TokenEOF:
		return nil, &MissingTokensError{Position: tok.Pos}
	default:
		return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
	}
}
