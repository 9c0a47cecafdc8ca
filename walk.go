package polish

// Walk visits every node of the tree rooted at n exactly once. For each node,
// enter is called before its left subtree is walked, between after the left
// subtree and before the right one, and exit after both subtrees. between is
// called for leaves too. Any hook may be nil.
//
// exit may change the node it is given, since its children have already been
// walked.
func (n *Node) Walk(enter, between, exit func(*Node)) {
	if enter != nil {
		enter(n)
	}
	if n.left != nil {
		n.left.Walk(enter, between, exit)
	}
	if between != nil {
		between(n)
	}
	if n.right != nil {
		n.right.Walk(enter, between, exit)
	}
	if exit != nil {
		exit(n)
	}
}
