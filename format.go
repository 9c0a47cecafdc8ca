package polish

import "strings"

// Postfix renders the tree in reverse Polish notation, each operator after its
// operands, e.g. "1 2 3 * +". Tokens are separated by single spaces.
func (n *Node) Postfix() string {
	var b strings.Builder
	n.Walk(nil, nil, func(m *Node) { token(&b, m.text) })
	return b.String()
}

// Prefix renders the tree in Polish notation, each operator before its
// operands, e.g. "+ 1 * 2 3". Tokens are separated by single spaces.
func (n *Node) Prefix() string {
	var b strings.Builder
	n.Walk(func(m *Node) { token(&b, m.text) }, nil, nil)
	return b.String()
}

// Infix renders the tree in infix notation. Every operator application is
// bracketed, whether or not the input bracketed it, and no term is, e.g.
// "(1 + (2 * 3))". Parsing the result with StripSpace gives a tree with the
// same postfix and prefix renderings as n.
func (n *Node) Infix() string {
	var b strings.Builder
	n.Walk(
		func(m *Node) {
			if m.left != nil && m.right != nil {
				b.WriteByte(OpenBracket)
			}
		},
		func(m *Node) {
			if m.left != nil {
				b.WriteByte(' ')
			}
			b.WriteString(m.text)
			if m.right != nil {
				b.WriteByte(' ')
			}
		},
		func(m *Node) {
			if m.left != nil && m.right != nil {
				b.WriteByte(CloseBracket)
			}
		},
	)
	return b.String()
}

// token appends a space-separated token to b.
func token(b *strings.Builder, s string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
