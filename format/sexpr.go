package format

import (
	"io"

	"github.com/rcoffey/exprparse/parser"
)

// SExprEncoder writes the canonical parenthesized prefix form of a tree:
// operators followed by their space-separated children, leaves as their
// literal text.
type SExprEncoder struct {
	w io.Writer
}

func NewSExprEncoder(w io.Writer) *SExprEncoder {
	return &SExprEncoder{w: w}
}

func (e *SExprEncoder) Encode(node *parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SExprEncoder) MarshalText(node *parser.Node) ([]byte, error) {
	return []byte(node.String() + "\n"), nil
}
