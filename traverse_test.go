package bst

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTraversalOrders(t *testing.T) {
	tree := FromSlice([]int{5, 3, 8, 1, 4, 7, 9})

	testCases := []struct {
		name     string
		traverse func() []int
		expected []int
	}{
		{"pre-order", tree.DFSPreOrder, []int{5, 3, 1, 4, 8, 7, 9}},
		{"in-order", tree.DFSInOrder, []int{1, 3, 4, 5, 7, 8, 9}},
		{"post-order", tree.DFSPostOrder, []int{1, 4, 3, 7, 9, 8, 5}},
		{"level-order", tree.BFS, []int{5, 3, 8, 1, 4, 7, 9}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, tc.traverse()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTraversalEmptyTree(t *testing.T) {
	tree := New[int]()

	testCases := []struct {
		name     string
		traverse func() []int
	}{
		{"pre-order", tree.DFSPreOrder},
		{"in-order", tree.DFSInOrder},
		{"post-order", tree.DFSPostOrder},
		{"iterative in-order", tree.DFSInOrderIterative},
		{"level-order", tree.BFS},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.traverse(); len(got) != 0 {
				t.Errorf("traversal = %v on empty tree; expected empty", got)
			}
		})
	}
}

func TestInOrderIterativeMatchesRecursive(t *testing.T) {
	sequences := [][]int{
		{},
		{1},
		{5, 3, 8, 1, 4, 7, 9},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{8, 3, 10, 1, 6, 14, 4, 7, 13},
	}
	for _, seq := range sequences {
		tree := FromSlice(seq)
		if diff := cmp.Diff(tree.DFSInOrder(), tree.DFSInOrderIterative()); diff != "" {
			t.Errorf("insert %v: mismatch (-recursive +iterative):\n%s", seq, diff)
		}
	}
}

func TestInOrderSorted(t *testing.T) {
	sequences := [][]int{
		{5, 3, 8, 1, 4, 7, 9},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{42, 17, 99, 3, 25, 60, 101, 88},
	}
	for _, seq := range sequences {
		tree := FromSlice(seq)
		result := tree.DFSInOrder()
		if !sort.IntsAreSorted(result) {
			t.Errorf("insert %v: in-order result %v not sorted", seq, result)
		}
	}
}
