package polish

// Expr = Term | Expr Op Expr | '(' Expr ')'
// Op = '=' | '+' | '-' | '*' | '/'
// Term = any run of bytes without operators or brackets
//
// The parser does not scan tokens. It finds the least binding operator
// outside brackets, splits there, and repeats on each side.

// Parse parses an infix expression into a tree. The given options are applied
// in order. Unless the StripSpace option is given, the caller should remove
// whitespace first, e.g. with Normalize.
//
// Errors from Parse implement InputError. No tree is returned on error.
func Parse(expr string, opts ...ParseOption) (*Node, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.strip {
		expr = Normalize(expr)
	}
	if expr == "" {
		return nil, &EmptyExpressionError{Col: 1}
	}
	// Brackets are checked once for the whole input. Splits only happen
	// outside brackets, so every subexpression is balanced too.
	if err := balance(expr); err != nil {
		return nil, err
	}
	n := &Node{text: expr, col: 1}
	if err := n.split(&p, 1); err != nil {
		return nil, err
	}
	return n, nil
}

// balance checks that the brackets in expr match.
func balance(expr string) error {
	var open []int
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case OpenBracket:
			open = append(open, i)
		case CloseBracket:
			if len(open) == 0 {
				return &BracketError{Col: i + 1, Expr: expr, Open: false}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: open[0] + 1, Expr: expr, Open: true}
	}
	return nil
}

// split turns n into a tree. depth is the level of n, counting the root as 1.
func (n *Node) split(p *parsectx, depth int) error {
	if p.maxdepth > 0 && depth > p.maxdepth {
		return &DepthError{Col: n.col, Expr: n.text, Max: p.maxdepth}
	}
	expr, k := unwrap(n.text)
	if expr == "" {
		// Brackets around nothing. Report the innermost pair.
		return &EmptyBracketError{Col: n.col + k - 1, Expr: "()"}
	}
	n.col += k
	op := splitpos(expr)
	if op < 0 {
		// No operator, so this is a term.
		n.text = expr
		return nil
	}
	if op == 0 || op == len(expr)-1 {
		return &ExpressionError{Col: n.col + op, Expr: expr, Operator: expr[op : op+1]}
	}
	l := &Node{text: expr[:op], col: n.col}
	if err := l.split(p, depth+1); err != nil {
		return err
	}
	r := &Node{text: expr[op+1:], col: n.col + op + 1}
	if err := r.split(p, depth+1); err != nil {
		return err
	}
	n.text, n.left, n.right = expr[op:op+1], l, r
	return nil
}

// unwrap removes every pair of brackets that encloses the entirety of expr,
// e.g. "((1+2))" becomes "1+2". The second result is the number of pairs
// removed. If the brackets enclose nothing, the result is the empty string.
func unwrap(expr string) (string, int) {
	k := 0
	for enclosed(expr) {
		expr = expr[1 : len(expr)-1]
		k++
	}
	return expr, k
}

// enclosed reports whether expr begins with an open bracket whose matching
// close bracket is the last byte of expr. expr must be balanced.
func enclosed(expr string) bool {
	if len(expr) < 2 || expr[0] != OpenBracket {
		return false
	}
	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case OpenBracket:
			depth++
		case CloseBracket:
			depth--
			if depth == 0 {
				// "(1)+(2)" closes its first bracket early.
				return i == len(expr)-1
			}
		}
	}
	return false
}

// splitpos finds the position of the least binding operator outside brackets.
// Among operators with the same priority, the rightmost is chosen, which makes
// every operator left-associative: "1-2-3" splits at the second "-". If there
// is no operator outside brackets, the result is -1.
func splitpos(expr string) int {
	pos, low, depth := -1, 0, 0
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch c {
		case OpenBracket:
			depth++
			continue
		case CloseBracket:
			depth--
			continue
		}
		prec := priority(c)
		if prec == 0 || depth != 0 {
			continue
		}
		if pos < 0 || prec <= low {
			pos, low = i, prec
		}
	}
	return pos
}
