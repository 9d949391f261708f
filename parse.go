package infixtree

import (
	"strings"
)

// Expr = num | Expr op Expr
// num  = digit { digit }
// op   = '+' | '-' | '*' | '/' | '^'

// Split breaks an expression into tokens on single spaces. Runs of spaces
// produce empty tokens, which Build ignores unless it is strict.
func Split(expr string) []string {
	return strings.Split(expr, " ")
}

// Build builds an expression tree from a sequence of infix tokens. The given
// options are applied in order.
//
// Tokens are consumed left to right with a stack of operands and a stack of
// pending operators. Before an operator is pushed, every pending operator of
// greater or equal precedence is combined with the top two operands, so equal
// precedence groups from the left. The root is the last operand remaining once
// all operators are combined; any operands beneath it are discarded.
//
// If an operator lacks operands, the error is an *OperandError. If there are
// no numbers at all, it is an *EmptyExpressionError.
func Build(tokens []string, opts ...BuildOption) (*Node, error) {
	var p buildctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.buildOption(p)
	}
	var (
		nodes []*Node
		ops   []pending
		err   error
	)
	for i, tok := range tokens {
		switch {
		case isnum(tok):
			nodes = append(nodes, &Node{kind: nodeNum, text: tok})
		case binop(tok).op != nodeNone:
			cur := pending{text: tok, op: binop(tok), pos: i}
			if p.rightpow && cur.op.op == nodePow {
				cur.op.right = true
			}
			for len(ops) > 0 && ops[len(ops)-1].op.yields(cur.op) {
				nodes, ops, err = reduce(nodes, ops)
				if err != nil {
					return nil, err
				}
			}
			ops = append(ops, cur)
		case p.strict:
			return nil, &TokenError{Pos: i, Token: tok}
		}
	}
	for len(ops) > 0 {
		nodes, ops, err = reduce(nodes, ops)
		if err != nil {
			return nil, err
		}
	}
	if len(nodes) == 0 {
		return nil, &EmptyExpressionError{Pos: len(tokens)}
	}
	return nodes[len(nodes)-1], nil
}

// pending is an operator waiting on the operator stack.
type pending struct {
	text string
	op   operator
	pos  int
}

// reduce pops the top operator and the top two operands and pushes the
// operator node combining them. The operand pushed last becomes the right
// child.
func reduce(nodes []*Node, ops []pending) ([]*Node, []pending, error) {
	top := ops[len(ops)-1]
	ops = ops[:len(ops)-1]
	if len(nodes) < 2 {
		return nodes, ops, &OperandError{Pos: top.pos, Operator: top.text}
	}
	l, r := nodes[len(nodes)-2], nodes[len(nodes)-1]
	nodes = nodes[:len(nodes)-2]
	nodes = append(nodes, &Node{kind: top.op.op, text: top.text, left: l, right: r})
	return nodes, ops, nil
}

// isnum returns whether a token is an unsigned decimal integer literal.
func isnum(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

// yields returns whether p, already pending, must be combined with its
// operands before next is pushed.
func (p operator) yields(next operator) bool {
	if p.prec != next.prec {
		return p.prec > next.prec
	}
	return !next.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{2, false, nodeMul}
	case "/":
		return operator{2, false, nodeDiv}
	case "^":
		return operator{3, false, nodePow}
	default:
		return operator{}
	}
}
