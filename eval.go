package polish

import (
	"errors"
	"math"
	"strconv"
)

// DefaultDigits is the number of significant digits to which reduced values
// are formatted unless the Digits option says otherwise.
const DefaultDigits = 15

// Context is a context for evaluating expression trees. A Context is never
// modified by evaluation, so one may be shared among goroutines evaluating
// different trees.
type Context struct {
	digits int
	trace  func(Reduction)
}

// Reduction describes one operator application replaced by its value.
type Reduction struct {
	// Op is the operator.
	Op string
	// Left and Right are the operand terms.
	Left, Right string
	// Result is the formatted value that replaced the operation.
	Result string
	// Col is the position of the reduced subexpression in the parsed input.
	Col int
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	digitsopt int
	traceopt  func(Reduction)
)

func (digitsopt) ctxOption() {}
func (traceopt) ctxOption()  {}

// Digits sets the number of significant digits kept when a reduced value is
// formatted back into the tree. A negative value keeps the fewest digits that
// represent each value exactly.
func Digits(n int) ContextOption {
	return digitsopt(n)
}

// Trace sets a function to call after each reduction.
func Trace(f func(Reduction)) ContextOption {
	return traceopt(f)
}

// NewContext creates a new evaluation context. If no digits are given, the
// default is DefaultDigits.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{digits: DefaultDigits}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case digitsopt:
			n.digits = int(opt)
		case traceopt:
			n.trace = opt
		default:
			panic("polish: unknown option type")
		}
	}
	return &n
}

// Digits returns the number of significant digits to which the context
// formats values.
func (ctx *Context) Digits() int {
	return ctx.digits
}

// Format formats a value the way the context writes reduced values into
// trees: plain decimal notation rounded to at most ctx.Digits() significant
// digits, with no trailing zeros and never an exponent. Infinities and NaN
// format as "+Inf", "-Inf", and "NaN".
func (ctx *Context) Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if ctx.digits >= 0 {
		prec := ctx.digits - 1
		if prec < 0 {
			prec = 0
		}
		// Round through the exponent form, which counts significant
		// digits, then print the rounded value exactly.
		r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'e', prec, 64), 64)
		if err == nil {
			v = r
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Evaluate reduces the tree rooted at n as far as possible. Each operator
// applied to two numbers is replaced by a leaf holding the formatted result,
// children first. If the whole tree reduces to a number, the result is that
// number and true. Otherwise, the result is false, and n holds what remains,
// which can be rendered with n.Infix.
//
// Evaluating a tree that has already been evaluated gives the same result.
func (ctx *Context) Evaluate(n *Node) (float64, bool) {
	n.Walk(nil, nil, ctx.reduce)
	if !n.IsLeaf() {
		return 0, false
	}
	return number(n.text)
}

// reduce replaces an operation on two numbers with its value.
func (ctx *Context) reduce(n *Node) {
	if n.left == nil || n.right == nil {
		// Terms are their own values.
		return
	}
	l, ok := number(n.left.text)
	if !ok {
		return
	}
	r, ok := number(n.right.text)
	if !ok {
		return
	}
	v, ok := apply(n.text, l, r)
	if !ok {
		return
	}
	s := ctx.Format(v)
	if ctx.trace != nil {
		ctx.trace(Reduction{Op: n.text, Left: n.left.text, Right: n.right.text, Result: s, Col: n.col})
	}
	n.text, n.left, n.right = s, nil, nil
}

// number parses a term as a number. Literals too large to represent are
// infinite rather than errors.
func number(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// Evaluate reduces the tree rooted at n as far as possible using the default
// context. See Context.Evaluate.
func (n *Node) Evaluate() (float64, bool) {
	return NewContext().Evaluate(n)
}

// EvalString is a shortcut to parse and evaluate an expression. Whitespace in
// src is ignored. If the expression parses but does not reduce to a number,
// the second result is the infix rendering of what remains.
func EvalString(src string, opts ...ContextOption) (float64, string, error) {
	n, err := Parse(src, StripSpace())
	if err != nil {
		return 0, "", err
	}
	v, ok := NewContext(opts...).Evaluate(n)
	if !ok {
		return 0, n.Infix(), nil
	}
	return v, "", nil
}
