package infixtree

import "strconv"

// OperandError is an error indicating an operator without enough operands to
// combine, e.g. the second + in "1 + + 2". It implements InputError.
type OperandError struct {
	// Pos is the index of the operator token.
	Pos int
	// Operator is the operator that was missing an operand.
	Operator string
}

func (err *OperandError) Error() string {
	return errpos(err.Pos, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Position() int {
	return err.Pos
}

// TokenError is an error indicating a token that is neither a number nor an
// operator. Build only returns it with the Strict option. It implements
// InputError.
type TokenError struct {
	// Pos is the index of the token.
	Pos int
	// Token is the token that was not understood.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Pos, "invalid token "+strconv.Quote(err.Token))
}

func (err *TokenError) Position() int {
	return err.Pos
}

// EmptyExpressionError is an error indicating that there were no numbers to
// build a tree from.
type EmptyExpressionError struct {
	// Pos is the number of tokens that were given.
	Pos int
}

func (err *EmptyExpressionError) Error() string {
	if err.Pos == 0 {
		return "no tokens"
	}
	return errpos(err.Pos, "no expression")
}

func (err *EmptyExpressionError) Position() int {
	return err.Pos
}

// errpos is a shortcut to create an error message with a token index.
func errpos(pos int, msg string) string {
	return "token " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input to Build implements InputError.
type InputError interface {
	error
	// Position returns the 0-based index of the token that caused the error.
	// For errors at the end of the input, it is the number of tokens.
	Position() int
}

var (
	_ InputError = (*OperandError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
