package tree

import "iter"

// Position is an opaque handle identifying one node's location within
// a specific tree instance. Positions are comparable: two positions
// are equal (==) exactly when they reference the same node of the
// same tree. A nil Position means "no node" (the parent of the root,
// or the root of an empty tree).
type Position interface {
	// Element returns the label stored at this position.
	Element() string
}

// Tree is the positional contract satisfied by any rooted, ordered,
// multi-child tree variant. Implementations supply only these five
// primitives; [IsRoot], [IsLeaf], [IsEmpty], [Depth], and [Height]
// are derived from them once, at package level, and must not be
// re-specified per variant.
//
// All methods taking a Position assume it is non-nil; passing a
// position that belongs to a different tree or references a removed
// node fails with [ErrInvalidPosition].
type Tree interface {
	// Root returns the position of the tree's root, or nil if the
	// tree is empty.
	Root() Position

	// Parent returns the position of p's parent, or nil if p is the
	// root.
	Parent(p Position) (Position, error)

	// NumChildren returns the number of children of p.
	NumChildren(p Position) (int, error)

	// Children returns a finite sequence of p's children in insertion
	// order. The sequence is empty if p is a leaf and may be ranged
	// over more than once.
	Children(p Position) (iter.Seq[Position], error)

	// Len returns the total number of nodes in the tree.
	Len() int
}

// IsRoot reports whether p is the root of t.
func IsRoot(t Tree, p Position) bool {
	return t.Root() == p
}

// IsLeaf reports whether p has no children.
func IsLeaf(t Tree, p Position) (bool, error) {
	n, err := t.NumChildren(p)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// IsEmpty reports whether t contains no nodes.
func IsEmpty(t Tree) bool {
	return t.Len() == 0
}

// Depth returns the number of levels separating p from the root:
// 0 for the root itself, otherwise 1 + Depth(parent). The cost is
// O(depth of p).
func Depth(t Tree, p Position) (int, error) {
	if IsRoot(t, p) {
		return 0, nil
	}
	parent, err := t.Parent(p)
	if err != nil {
		return 0, err
	}
	d, err := Depth(t, parent)
	if err != nil {
		return 0, err
	}
	return d + 1, nil
}

// Height returns the height of the subtree rooted at p: 0 for a leaf,
// otherwise 1 + the maximum height among p's children. If p is nil
// the height of the entire tree is returned; calling Height with a
// nil p on an empty tree fails with [ErrInvalidPosition].
//
// The cost is linear in the size of the subtree rooted at p. Calling
// Height for every position of a degenerate tree is therefore
// quadratic overall; that is the contract, not an implementation
// accident.
func Height(t Tree, p Position) (int, error) {
	if p == nil {
		p = t.Root()
		if p == nil {
			return 0, ErrInvalidPosition
		}
	}
	leaf, err := IsLeaf(t, p)
	if err != nil {
		return 0, err
	}
	if leaf {
		return 0, nil
	}
	children, err := t.Children(p)
	if err != nil {
		return 0, err
	}
	max := 0
	for c := range children {
		h, err := Height(t, c)
		if err != nil {
			return 0, err
		}
		if h > max {
			max = h
		}
	}
	return 1 + max, nil
}
