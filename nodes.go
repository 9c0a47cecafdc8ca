package polish

// Node is a node in the binary tree of an expression. An internal node holds
// a single operator character and exactly two children. A leaf holds a term:
// a number, a symbol, or the formatted result of a reduction.
//
// A Node is not safe for concurrent use. Evaluating a tree modifies it.
type Node struct {
	// text is the operator or term. Before the node is split, it is the
	// whole subexpression.
	text string
	// col is the 1-based byte column of the subexpression in the input.
	col int

	left  *Node
	right *Node
}

// Text returns the operator of an internal node or the term of a leaf.
func (n *Node) Text() string {
	return n.text
}

// Left returns the left operand of an internal node, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right operand of an internal node, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Pos returns the 1-based byte column in the parsed input where the
// subexpression represented by n begins, after any enclosing brackets.
func (n *Node) Pos() int {
	return n.col
}

// String returns the infix rendering of the tree rooted at n.
func (n *Node) String() string {
	return n.Infix()
}

// Depth returns the number of nodes on the longest path from n to a leaf,
// counting both ends.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 1
	}
	l, r := n.left.Depth(), n.right.Depth()
	if r > l {
		l = r
	}
	return l + 1
}
