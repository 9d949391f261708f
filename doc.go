// Package infixtree builds binary expression trees from space-separated infix
// arithmetic and evaluates them as float64.
//
// The grammar is deliberately small: unsigned integer literals and the binary
// operators + - * / ^, with ^ binding tighter than * and /, which bind tighter
// than + and -. There are no brackets and no unary operators. "2 + 3 ^ 2" is
// 11. Operators of equal precedence group from the left, and by default that
// includes ^, so "2 ^ 3 ^ 2" is (2^3)^2 = 64; use RightAssocPow to get 512.
//
// Tokens that are neither literals nor operators are dropped unless the Strict
// option is given.
//
package infixtree
