package format

import (
	"encoding/json"
	"io"

	"github.com/rcoffey/exprparse/parser"
)

// ASTJSONEncoder writes a tree as indented JSON, one object per node with
// its kind, token literal, and children.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *parser.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Token    string         `json:"token"`
	Children []*astJSONNode `json:"children,omitempty"`
}

func nodeToJSON(n *parser.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:  n.Kind.String(),
		Token: n.Tok.Literal,
	}
	if n.Left != nil {
		jn.Children = append(jn.Children, nodeToJSON(n.Left))
	}
	if n.Right != nil {
		jn.Children = append(jn.Children, nodeToJSON(n.Right))
	}
	return jn
}
