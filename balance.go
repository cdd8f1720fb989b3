package bst

// IsBalanced reports whether the longest and shortest paths from the
// root to an empty slot differ by at most one. The check applies to
// the root only; it is not a per-node AVL invariant. An empty tree is
// balanced.
func (t *BinarySearchTree[T]) IsBalanced() bool {
	return t.Root.maxDepth()-t.Root.minDepth() <= 1
}

func (n *Node[T]) minDepth() int {
	if n == nil {
		return 0
	}
	return 1 + min(n.Left.minDepth(), n.Right.minDepth())
}

func (n *Node[T]) maxDepth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.maxDepth(), n.Right.maxDepth())
}

// FindSecondHighest returns the second-highest value by walking
// rightward from the root: at a node with only a left child it
// descends left and restarts the walk there; a node whose right child
// is a leaf is the answer. The second return value is false for an
// empty or single-node tree, and for shapes the directional walk
// cannot resolve (a left-only node whose left child is itself a
// leaf).
func (t *BinarySearchTree[T]) FindSecondHighest() (T, bool) {
	if t.Root == nil || (t.Root.Left == nil && t.Root.Right == nil) {
		var zero T
		return zero, false
	}
	return t.Root.secondHighest()
}

func (n *Node[T]) secondHighest() (T, bool) {
	switch {
	case n.Left != nil && n.Right == nil:
		return n.Left.secondHighest()
	case n.Right != nil && n.Right.Left == nil && n.Right.Right == nil:
		return n.Value, true
	case n.Right != nil:
		return n.Right.secondHighest()
	}
	var zero T
	return zero, false
}
