package parser

import "strconv"

// InputError is an error caused by invalid input. Every error produced
// while tokenizing or parsing implements it; callers discriminate the
// concrete kind with errors.As.
type InputError interface {
	error
	// Pos returns the byte offset of the token that caused the error.
	Pos() int
}

// InvalidTokenError reports a value word that does not convert to a number,
// or a token that no rule of the selected grammar accepts.
type InvalidTokenError struct {
	Position int
	Word     string
}

func (err *InvalidTokenError) Error() string {
	return errpos(err.Position, "invalid token "+strconv.Quote(err.Word))
}

func (err *InvalidTokenError) Pos() int { return err.Position }

// UnexpectedTokenError reports an Expect mismatch on the cursor.
type UnexpectedTokenError struct {
	Position int
	Expected TokenKind
	Got      Token
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Position, "expected "+err.Expected.String()+", got "+err.Got.Kind.String())
}

func (err *UnexpectedTokenError) Pos() int { return err.Position }

// MissingTokensError reports input that ended while a grammar rule still
// needed more tokens.
type MissingTokensError struct {
	Position int
}

func (err *MissingTokensError) Error() string {
	return errpos(err.Position, "expression ended before the grammar was satisfied")
}

func (err *MissingTokensError) Pos() int { return err.Position }

// ExtraTokensError reports tokens left over after a complete parse.
type ExtraTokensError struct {
	Position int
	Got      Token
}

func (err *ExtraTokensError) Error() string {
	if err.Got.Literal == "" {
		return errpos(err.Position, "input remains after a complete expression")
	}
	return errpos(err.Position, "input remains after a complete expression, next is "+strconv.Quote(err.Got.Literal))
}

func (err *ExtraTokensError) Pos() int { return err.Position }

// MissingArgumentsError reports a postfix operator with fewer than two
// operands on the stack.
type MissingArgumentsError struct {
	Position int
	Op       Token
}

func (err *MissingArgumentsError) Error() string {
	return errpos(err.Position, "operator "+strconv.Quote(err.Op.Literal)+" needs two operands")
}

func (err *MissingArgumentsError) Pos() int { return err.Position }

// UnbalancedParensError reports a parenthesis mismatch. Missing is true
// when a required paren was absent, false when a paren appeared where none
// was legal.
type UnbalancedParensError struct {
	Position int
	Paren    string
	Missing  bool
}

func (err *UnbalancedParensError) Error() string {
	if err.Missing {
		return errpos(err.Position, "missing "+strconv.Quote(err.Paren))
	}
	return errpos(err.Position, "unexpected "+strconv.Quote(err.Paren))
}

func (err *UnbalancedParensError) Pos() int { return err.Position }

func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*InvalidTokenError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*MissingTokensError)(nil)
	_ InputError = (*ExtraTokensError)(nil)
	_ InputError = (*MissingArgumentsError)(nil)
	_ InputError = (*UnbalancedParensError)(nil)
)
