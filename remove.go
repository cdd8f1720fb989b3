package bst

// Remove deletes the node holding value and returns it, detached from
// the tree and carrying the removed value. It returns nil without
// mutating the tree when the value is absent. Parent linkage is
// reconstructed by walking from the root; nodes store no parent
// pointers.
func (t *BinarySearchTree[T]) Remove(value T) *Node[T] {
	if t.Root == nil {
		return nil
	}

	// Hang the root off a synthetic parent so the relinking below
	// treats the root like any other child.
	anchor := &Node[T]{Right: t.Root}
	parent, current := anchor, t.Root
	for current != nil && current.Value != value {
		parent = current
		if value < current.Value {
			current = current.Left
		} else {
			current = current.Right
		}
	}
	if current == nil {
		return nil
	}

	removed := current
	switch {
	case current.Left == nil && current.Right == nil:
		parent.replaceChild(current, nil)
	case current.Left == nil:
		parent.replaceChild(current, current.Right)
	case current.Right == nil:
		parent.replaceChild(current, current.Left)
	case current.Right.Left == nil:
		// The right child is the in-order successor; it takes over
		// the removed node's position and left subtree.
		current.Right.Left = current.Left
		parent.replaceChild(current, current.Right)
	default:
		// Swap values with the leftmost node of the right subtree,
		// then detach that node, promoting its right subtree.
		leftmostParent, leftmost := current.Right, current.Right.Left
		for leftmost.Left != nil {
			leftmostParent = leftmost
			leftmost = leftmost.Left
		}
		current.Value, leftmost.Value = leftmost.Value, current.Value
		leftmostParent.Left = leftmost.Right
		removed = leftmost
	}

	t.Root = anchor.Right
	removed.Left, removed.Right = nil, nil
	return removed
}

func (n *Node[T]) replaceChild(old, repl *Node[T]) {
	if n.Left == old {
		n.Left = repl
	} else if n.Right == old {
		n.Right = repl
	}
}
