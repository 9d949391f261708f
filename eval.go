package infixtree

import (
	"errors"
	"math"
	"strconv"
)

// Eval evaluates an expression tree. A nil tree evaluates to 0. Division by
// zero and exponentiation outside the real domain are not errors; they produce
// infinities and NaNs as usual for float64. The only error is a leaf whose
// text is not a number, which Build never creates, in which case the error is
// a *NumberError.
//
// An operator node with an unrecognized symbol evaluates to 0 once both of its
// operands have evaluated successfully.
func Eval(n *Node) (float64, error) {
	return n.Eval()
}

// Eval evaluates the tree rooted at n. See the Eval function.
func (n *Node) Eval() (float64, error) {
	if n == nil {
		return 0, nil
	}
	if n.kind == nodeNum {
		return num(n.text)
	}
	l, err := n.left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := n.right.Eval()
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		return l / r, nil
	case nodePow:
		return math.Pow(l, r), nil
	default:
		return 0, nil
	}
}

// num parses the text of a leaf.
func num(s string) (float64, error) {
	r, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// r is already ±Inf.
	default:
		return 0, &NumberError{Text: s, Err: err}
	}
	return r, nil
}

// EvalString is a shortcut to split, build, and evaluate a string expression.
func EvalString(expr string, opts ...BuildOption) (float64, error) {
	n, err := Build(Split(expr), opts...)
	if err != nil {
		return 0, err
	}
	return n.Eval()
}

// Format formats a result as the shortest decimal that parses back to the
// same float64.
func Format(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// NumberError is an error from evaluating a leaf whose text is not a number.
type NumberError struct {
	// Text is the text of the leaf.
	Text string
	// Err is the error from parsing the text.
	Err error
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

func (err *NumberError) Unwrap() error {
	return err.Err
}
