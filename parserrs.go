package polish

import "strconv"

// ErrorKind classifies the errors produced by Parse.
type ErrorKind int8

const (
	kindNone ErrorKind = iota

	// UnbalancedBracket is an open bracket without a close bracket, or the
	// reverse.
	UnbalancedBracket
	// EmptyBracket is a pair of brackets with nothing between them.
	EmptyBracket
	// InvalidExpression is an operator missing an operand.
	InvalidExpression
	// EmptyExpression is input with nothing to parse.
	EmptyExpression
	// TooDeep is a tree exceeding the MaxDepth parse option.
	TooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedBracket:
		return "UnbalancedBracket"
	case EmptyBracket:
		return "EmptyBracket"
	case InvalidExpression:
		return "InvalidExpression"
	case EmptyExpression:
		return "EmptyExpression"
	case TooDeep:
		return "TooDeep"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the first unmatched bracket.
	Col int
	// Expr is the expression containing the mismatch.
	Expr string
	// Open is true if the unmatched bracket is an open bracket that is never
	// closed, or false if it is a close bracket with no open bracket.
	Open bool
}

func (err *BracketError) Error() string {
	return "unbalanced bracket: " + err.Expr
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Kind() ErrorKind {
	return UnbalancedBracket
}

// EmptyBracketError is an error indicating a pair of brackets enclosing
// nothing, as in "()". It implements InputError.
type EmptyBracketError struct {
	// Col is the position of the open bracket.
	Col int
	// Expr is the subexpression consisting of the empty brackets.
	Expr string
}

func (err *EmptyBracketError) Error() string {
	return "empty bracket: " + err.Expr
}

func (err *EmptyBracketError) Pos() int {
	return err.Col
}

func (err *EmptyBracketError) Kind() ErrorKind {
	return EmptyBracket
}

// ExpressionError is an error indicating an operator at the start or end of a
// subexpression, where it is missing an operand. It implements InputError.
type ExpressionError struct {
	// Col is the position of the operator.
	Col int
	// Expr is the subexpression, without its enclosing brackets.
	Expr string
	// Operator is the operator missing an operand.
	Operator string
}

func (err *ExpressionError) Error() string {
	return "invalid expression: " + err.Expr
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

func (err *ExpressionError) Kind() ErrorKind {
	return InvalidExpression
}

// EmptyExpressionError is an error indicating that there was nothing to
// parse. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position where an expression was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Kind() ErrorKind {
	return EmptyExpression
}

// DepthError is an error indicating a tree deeper than the limit set with
// MaxDepth. It implements InputError.
type DepthError struct {
	// Col is the position of the subexpression that would exceed the limit.
	Col int
	// Expr is that subexpression.
	Expr string
	// Max is the limit.
	Max int
}

func (err *DepthError) Error() string {
	return "expression nested too deeply (limit " + strconv.Itoa(err.Max) + "): " + err.Expr
}

func (err *DepthError) Pos() int {
	return err.Col
}

func (err *DepthError) Kind() ErrorKind {
	return TooDeep
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position in the input of the token or
	// subexpression that caused the error.
	Pos() int
	// Kind classifies the error.
	Kind() ErrorKind
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyBracketError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DepthError)(nil)
)
