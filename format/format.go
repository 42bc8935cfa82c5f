package format

import (
	"github.com/rcoffey/exprparse/parser"
)

// Encoder renders a parsed expression tree to an output stream.
type Encoder interface {
	Encode(node *parser.Node) error
}

var (
	_ Encoder = (*SExprEncoder)(nil)
	_ Encoder = (*ASTJSONEncoder)(nil)
)
