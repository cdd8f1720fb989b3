// Package bst implements a binary search tree over any ordered value
// type. Left subtree values are strictly less than the node value,
// right subtree values strictly greater; duplicates are dropped on
// insert. The tree is not safe for concurrent use.
package bst

import "golang.org/x/exp/constraints"

type Node[T constraints.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

type BinarySearchTree[T constraints.Ordered] struct {
	Root *Node[T]
}

func New[T constraints.Ordered]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{}
}

// NewFromRoot wraps an existing node as the root of a tree. The node
// and its subtrees must already satisfy the ordering invariant.
func NewFromRoot[T constraints.Ordered](root *Node[T]) *BinarySearchTree[T] {
	return &BinarySearchTree[T]{Root: root}
}

// FromSlice builds a tree by inserting the values in order.
func FromSlice[T constraints.Ordered](values []T) *BinarySearchTree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds value to the tree and returns the tree for chaining. A
// value already present is dropped without error.
func (t *BinarySearchTree[T]) Insert(value T) *BinarySearchTree[T] {
	if t.Root == nil {
		t.Root = &Node[T]{Value: value}
		return t
	}
	current := t.Root
	for {
		switch {
		case value < current.Value:
			if current.Left == nil {
				current.Left = &Node[T]{Value: value}
				return t
			}
			current = current.Left
		case value > current.Value:
			if current.Right == nil {
				current.Right = &Node[T]{Value: value}
				return t
			}
			current = current.Right
		default:
			return t
		}
	}
}

// InsertRec is the recursive counterpart of Insert. Both produce
// identical trees for identical input sequences.
func (t *BinarySearchTree[T]) InsertRec(value T) *BinarySearchTree[T] {
	if t.Root == nil {
		t.Root = &Node[T]{Value: value}
		return t
	}
	t.Root.insert(value)
	return t
}

func (n *Node[T]) insert(value T) {
	switch {
	case value < n.Value:
		if n.Left == nil {
			n.Left = &Node[T]{Value: value}
		} else {
			n.Left.insert(value)
		}
	case value > n.Value:
		if n.Right == nil {
			n.Right = &Node[T]{Value: value}
		} else {
			n.Right.insert(value)
		}
	}
}

// Find returns the node holding value, or nil if no such node exists.
func (t *BinarySearchTree[T]) Find(value T) *Node[T] {
	current := t.Root
	for current != nil {
		switch {
		case value < current.Value:
			current = current.Left
		case value > current.Value:
			current = current.Right
		default:
			return current
		}
	}
	return nil
}

// FindRec is the recursive counterpart of Find.
func (t *BinarySearchTree[T]) FindRec(value T) *Node[T] {
	if t.Root == nil {
		return nil
	}
	return t.Root.search(value)
}

func (n *Node[T]) search(value T) *Node[T] {
	if value == n.Value {
		return n
	}
	if value < n.Value && n.Left != nil {
		return n.Left.search(value)
	}
	if value > n.Value && n.Right != nil {
		return n.Right.search(value)
	}
	return nil
}

func (t *BinarySearchTree[T]) Contains(value T) bool {
	return t.Find(value) != nil
}

func (t *BinarySearchTree[T]) Size() int {
	return t.Root.count()
}

func (n *Node[T]) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.count() + n.Right.count()
}

// Min returns the smallest value in the tree. The second return value
// is false for an empty tree.
func (t *BinarySearchTree[T]) Min() (T, bool) {
	if t.Root == nil {
		var zero T
		return zero, false
	}
	current := t.Root
	for current.Left != nil {
		current = current.Left
	}
	return current.Value, true
}

// Max returns the largest value in the tree. The second return value
// is false for an empty tree.
func (t *BinarySearchTree[T]) Max() (T, bool) {
	if t.Root == nil {
		var zero T
		return zero, false
	}
	current := t.Root
	for current.Right != nil {
		current = current.Right
	}
	return current.Value, true
}
