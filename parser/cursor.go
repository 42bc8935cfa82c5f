package parser

// Cursor is a single-lookahead view over a token sequence. Each parse call
// owns its own cursor; nothing is shared across invocations, so parses may
// run concurrently as long as each uses its own cursor.
type Cursor struct {
	toks []Token
	pos  int
}

func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// NewReversedCursor installs the cursor over a reversed copy of toks. The
// left-associative parser consumes the stream back to front and mirrors the
// resulting tree afterwards.
func NewReversedCursor(toks []Token) *Cursor {
	rev := make([]Token, len(toks))
	for i, tok := range toks {
		rev[len(toks)-1-i] = tok
	}
	return &Cursor{toks: rev}
}

// Peek returns the first unconsumed token, or an EOF sentinel once the
// sequence is exhausted.
func (c *Cursor) Peek() Token {
	if c.pos < len(c.toks) {
		return c.toks[c.pos]
	}
	return Token{Kind: TokenEOF, Pos: c.endPos()}
}

func (c *Cursor) endPos() int {
	if len(c.toks) == 0 {
		return 0
	}
	last := c.toks[len(c.toks)-1]
	return last.Pos + len(last.Literal)
}

// Consume advances past the current token. Consuming past the end of the
// sequence is a no-op; Peek keeps yielding the EOF sentinel.
func (c *Cursor) Consume() {
	if c.pos < len(c.toks) {
		c.pos++
	}
}

// Expect consumes the current token if it has the given kind and otherwise
// reports an UnexpectedTokenError.
func (c *Cursor) Expect(kind TokenKind) error {
	tok := c.Peek()
	if tok.Kind != kind {
		return &UnexpectedTokenError{Position: tok.Pos, Expected: kind, Got: tok}
	}
	c.Consume()
	return nil
}

func (c *Cursor) Match(kind TokenKind) bool {
	return c.Peek().Kind == kind
}

func (c *Cursor) MatchLiteral(lit string) bool {
	return c.Peek().Literal == lit
}

// expectEnd enforces that the whole token stream was consumed.
func expectEnd(c *Cursor) error {
	tok := c.Peek()
	if tok.Kind != TokenEOF {
		return &ExtraTokensError{Position: tok.Pos, Got: tok}
	}
	return nil
}
