package parser

import "strings"

type NodeKind int

const (
	KindValue NodeKind = iota
	KindUnary
	KindBinary
)

var nodeKindNames = map[NodeKind]string{
	KindValue:  "Value",
	KindUnary:  "Unary",
	KindBinary: "Binary",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one node of an expression tree: a value leaf, a unary operator
// application (child in Left), or a binary operation. Arity is fixed by the
// constructor; each node exclusively owns its children.
type Node struct {
	Kind  NodeKind
	Tok   Token
	Left  *Node
	Right *Node
}

func Value(tok Token) *Node {
	return &Node{Kind: KindValue, Tok: tok}
}

func Unary(op Token, child *Node) *Node {
	return &Node{Kind: KindUnary, Tok: op, Left: child}
}

func Binary(op Token, left, right *Node) *Node {
	return &Node{Kind: KindBinary, Tok: op, Left: left, Right: right}
}

// String renders the canonical parenthesized prefix form: leaves print as
// their literal text, operations as "(op child ...)".
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	switch n.Kind {
	case KindValue:
		sb.WriteString(n.Tok.Literal)
	case KindUnary:
		sb.WriteString("(")
		sb.WriteString(n.Tok.Literal)
		sb.WriteString(" ")
		n.Left.write(sb)
		sb.WriteString(")")
	case KindBinary:
		sb.WriteString("(")
		sb.WriteString(n.Tok.Literal)
		sb.WriteString(" ")
		n.Left.write(sb)
		sb.WriteString(" ")
		n.Right.write(sb)
		sb.WriteString(")")
	}
}

// Mirror swaps left and right children recursively, inverting the whole
// tree. The left-associative parser builds its tree from a reversed token
// stream and relies on this to restore source order.
func (n *Node) Mirror() {
	if n == nil {
		return
	}
	n.Left.Mirror()
	n.Right.Mirror()
	if n.Kind == KindBinary {
		n.Left, n.Right = n.Right, n.Left
	}
}

// Leaves counts the value leaves of the tree.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.Kind == KindValue {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}
