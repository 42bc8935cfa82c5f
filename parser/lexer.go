package parser

import "strconv"

const opChars = "=+-*/^()"

func isOpChar(ch byte) bool {
	for i := 0; i < len(opChars); i++ {
		if opChars[i] == ch {
			return true
		}
	}
	return false
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// Lexer scans an expression left to right, one token per call to NextToken.
// Classification is by character membership only: the fixed operator and
// paren characters form single-character tokens, and any maximal run of
// other non-space characters forms a value word. A value word that does not
// convert to a number comes back as a TokenError token.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: start}
	}

	ch := l.peek()
	if isOpChar(ch) {
		l.pos++
		kind := TokenOperator
		switch ch {
		case '(':
			kind = TokenLParen
		case ')':
			kind = TokenRParen
		}
		return Token{Kind: kind, Literal: l.input[start:l.pos], Pos: start}
	}

	for l.pos < len(l.input) && !isSpace(l.peek()) && !isOpChar(l.peek()) {
		l.pos++
	}
	word := l.input[start:l.pos]
	value, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return Token{Kind: TokenError, Literal: word, Pos: start}
	}
	return Token{Kind: TokenNumber, Literal: word, Value: value, Pos: start}
}

// Tokenize materializes the full token sequence for input, excluding the
// trailing EOF (the cursor synthesizes that sentinel on demand).
func Tokenize(input string) ([]Token, error) {
	lexer := NewLexer(input)
	var toks []Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		if tok.Kind == TokenError {
			return nil, &InvalidTokenError{Position: tok.Pos, Word: tok.Literal}
		}
		toks = append(toks, tok)
	}
}
