package infixtree

import (
	"strings"
)

// Node is a node in an expression tree. A Node is either a leaf holding the
// text of a numeric literal or an operator with exactly two children. Nodes
// are never modified after construction, so a tree may be evaluated any
// number of times, including concurrently.
type Node struct {
	kind nodeKind

	text string

	left  *Node
	right *Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // text is the literal, parsed at eval

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// NewLeaf creates a leaf node holding a numeric literal. The text is not
// checked until the node is evaluated.
func NewLeaf(text string) *Node {
	return &Node{kind: nodeNum, text: text}
}

// NewOp creates an operator node. If op is not one of the operators + - * / ^,
// the node is still created, but it evaluates to 0.
func NewOp(op string, left, right *Node) *Node {
	return &Node{kind: binop(op).op, text: op, left: left, right: right}
}

// IsLeaf returns whether n is a numeric leaf.
func (n *Node) IsLeaf() bool {
	return n.kind == nodeNum
}

// Text returns the literal text of a leaf or the operator symbol of an
// operator node.
func (n *Node) Text() string {
	return n.text
}

// Left returns the left operand of an operator node, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right operand of an operator node, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// String creates a string representation of the tree, with alternating round
// and square brackets grouping each term.
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(n.text)
	case nodeNone, nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		// Unknown operators keep their symbol between invalid characters.
		if n.kind == nodeNone {
			b.WriteByte('$')
			defer b.WriteByte('$')
		}
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteString(" " + n.text + " ")
		if n.right != nil {
			n.right.fmt(b, !square)
		}
	default:
		panic("infixtree: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
