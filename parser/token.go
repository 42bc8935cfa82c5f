package parser

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	TokenNumber
	TokenOperator
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenError:    "Error",
	TokenNumber:   "Number",
	TokenOperator: "Operator",
	TokenLParen:   "(",
	TokenRParen:   ")",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexed unit of an expression. Literal holds the source
// text: the operator symbol for TokenOperator tokens, the raw word for
// TokenNumber and TokenError tokens. Value is set only for TokenNumber.
// Pos is the byte offset of the token's first character.
type Token struct {
	Kind    TokenKind
	Literal string
	Value   float64
	Pos     int
}
