package bst

func (t *BinarySearchTree[T]) DFSPreOrder() []T {
	return t.Root.preOrder()
}

func (t *BinarySearchTree[T]) DFSInOrder() []T {
	return t.Root.inOrder()
}

func (t *BinarySearchTree[T]) DFSPostOrder() []T {
	return t.Root.postOrder()
}

func (n *Node[T]) preOrder() []T {
	res := []T{}
	if n != nil {
		res = append(res, n.Value)
		res = append(res, n.Left.preOrder()...)
		res = append(res, n.Right.preOrder()...)
	}
	return res
}

func (n *Node[T]) inOrder() []T {
	res := []T{}
	if n != nil {
		res = append(res, n.Left.inOrder()...)
		res = append(res, n.Value)
		res = append(res, n.Right.inOrder()...)
	}
	return res
}

func (n *Node[T]) postOrder() []T {
	res := []T{}
	if n != nil {
		res = append(res, n.Left.postOrder()...)
		res = append(res, n.Right.postOrder()...)
		res = append(res, n.Value)
	}
	return res
}

// DFSInOrderIterative walks the tree in order using an explicit stack
// instead of recursion. Its output is identical to DFSInOrder for
// every tree.
func (t *BinarySearchTree[T]) DFSInOrderIterative() []T {
	res := []T{}
	stack := []*Node[T]{}
	current := t.Root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.Left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, current.Value)
		current = current.Right
	}
	return res
}

// BFS returns the values in level order, children visited left to
// right. An empty tree yields an empty slice.
func (t *BinarySearchTree[T]) BFS() []T {
	res := []T{}
	if t.Root == nil {
		return res
	}
	queue := []*Node[T]{t.Root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		res = append(res, node.Value)
		if node.Left != nil {
			queue = append(queue, node.Left)
		}
		if node.Right != nil {
			queue = append(queue, node.Right)
		}
	}
	return res
}
