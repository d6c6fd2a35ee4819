package tree

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrInvalidPosition is returned when a position fails validation:
	// it is not a position produced by this package, it belongs to a
	// different tree instance, or it references a node that has been
	// marked removed.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrRootExists is returned by [LinkedTree.AddRoot] when the tree
	// already has a root.
	ErrRootExists = errors.New("tree already has a root")
)

// Order selects the traversal order for [LinkedTree.Lines].
type Order int

const (
	// PreOrder visits a node before its children.
	PreOrder Order = iota
	// PostOrder visits a node after its children.
	PostOrder
)

// node stores one element together with its ownership links. A node
// is exclusively owned by its parent (or by the tree, for the root).
// A removed node is marked by pointing its parent link at itself; the
// tombstone lets validate detect stale positions.
type node struct {
	element  string
	parent   *node
	children []*node
}

// position pairs a tree instance with one of its nodes. It is a
// comparable value type, so interface equality on two positions
// compares both the owning tree and the node identity.
type position struct {
	tree *LinkedTree
	node *node
}

// Element returns the label stored at this position.
func (p position) Element() string { return p.node.element }

// LinkedTree is the node-linked realization of [Tree]. Children are
// kept in insertion order. The zero value is an empty, usable tree,
// but use [New] for symmetry with the rest of the package.
//
// LinkedTree is not safe for concurrent use.
type LinkedTree struct {
	root *node
	size int
}

// New creates an empty tree.
func New() *LinkedTree {
	return &LinkedTree{}
}

// validate returns the node referenced by p after checking that p is
// a position of this tree and still alive. Every failure mode wraps
// [ErrInvalidPosition].
func (t *LinkedTree) validate(p Position) (*node, error) {
	pos, ok := p.(position)
	if !ok {
		return nil, fmt.Errorf("%w: not a position type (%T)", ErrInvalidPosition, p)
	}
	if pos.tree != t {
		return nil, fmt.Errorf("%w: position belongs to a different tree", ErrInvalidPosition)
	}
	if pos.node.parent == pos.node { // tombstone for removed nodes
		return nil, fmt.Errorf("%w: position is no longer valid", ErrInvalidPosition)
	}
	return pos.node, nil
}

// pos wraps a node as a Position, mapping a nil node to a nil Position.
func (t *LinkedTree) pos(n *node) Position {
	if n == nil {
		return nil
	}
	return position{tree: t, node: n}
}

// Len returns the total number of nodes in the tree.
func (t *LinkedTree) Len() int { return t.size }

// Root returns the root position, or nil if the tree is empty.
func (t *LinkedTree) Root() Position { return t.pos(t.root) }

// Parent returns the position of p's parent, or nil if p is the root.
func (t *LinkedTree) Parent(p Position) (Position, error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	return t.pos(n.parent), nil
}

// NumChildren returns the number of children of p.
func (t *LinkedTree) NumChildren(p Position) (int, error) {
	n, err := t.validate(p)
	if err != nil {
		return 0, err
	}
	return len(n.children), nil
}

// Children returns p's children in insertion order. The returned
// sequence is re-enterable: ranging over it twice yields the same
// positions, reflecting any mutations made in between.
func (t *LinkedTree) Children(p Position) (iter.Seq[Position], error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	return func(yield func(Position) bool) {
		for _, c := range n.children {
			if !yield(t.pos(c)) {
				return
			}
		}
	}, nil
}

// AddRoot installs e as the root of an empty tree and returns its
// position. It fails with [ErrRootExists] if a root is already
// present.
func (t *LinkedTree) AddRoot(e string) (Position, error) {
	if t.root != nil {
		return nil, ErrRootExists
	}
	t.root = &node{element: e}
	t.size = 1
	return t.pos(t.root), nil
}

// AddChild appends a new node labeled e under p and returns its
// position. If p already has a child labeled e, that child's position
// is returned and the tree is left unchanged: construction by
// repeated paths relies on this idempotence to merge shared prefixes
// without duplicating siblings.
func (t *LinkedTree) AddChild(p Position, e string) (Position, error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	for _, c := range n.children {
		if c.element == e {
			return t.pos(c), nil
		}
	}
	child := &node{element: e, parent: n}
	n.children = append(n.children, child)
	t.size++
	return t.pos(child), nil
}

// AddNode adds a node labeled e to the tree: as the root when p is
// nil, otherwise as a child of p via [LinkedTree.AddChild].
func (t *LinkedTree) AddNode(e string, p Position) (Position, error) {
	if p == nil {
		return t.AddRoot(e)
	}
	return t.AddChild(p, e)
}

// PathToRoot returns the positions from p up to the root, inclusive
// of both ends. The result starts with p, ends with the root, and has
// length Depth(p)+1.
func (t *LinkedTree) PathToRoot(p Position) ([]Position, error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	var path []Position
	for n != nil {
		path = append(path, t.pos(n))
		n = n.parent
	}
	return path, nil
}

// FindChildByValue scans p's children in order for the first one
// labeled value. The boolean result distinguishes "no such child"
// from any valid position.
func (t *LinkedTree) FindChildByValue(p Position, value string) (Position, bool, error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, false, err
	}
	for _, c := range n.children {
		if c.element == value {
			return t.pos(c), true, nil
		}
	}
	return nil, false, nil
}

// Preorder returns all positions of the tree in preorder (node before
// children, children in insertion order). The sequence is empty for
// an empty tree and re-enterable for repeated traversals.
func (t *LinkedTree) Preorder() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if t.root != nil {
			t.walk(t.root, yield)
		}
	}
}

func (t *LinkedTree) walk(n *node, yield func(Position) bool) bool {
	if !yield(t.pos(n)) {
		return false
	}
	for _, c := range n.children {
		if !t.walk(c, yield) {
			return false
		}
	}
	return true
}

// Lines returns the tree rendered one node per line in the given
// order. Each line is the node's element indented by one tab per
// level of depth and terminated by a newline:
//
//	<TAB x depth><element>\n
//
// Children are visited in insertion order. The sequence is lazy,
// finite, and re-enterable; an empty tree yields nothing.
func (t *LinkedTree) Lines(order Order) iter.Seq[string] {
	return func(yield func(string) bool) {
		if t.root != nil {
			t.emit(t.root, 0, order, yield)
		}
	}
}

func (t *LinkedTree) emit(n *node, depth int, order Order, yield func(string) bool) bool {
	line := strings.Repeat("\t", depth) + n.element + "\n"
	if order == PreOrder && !yield(line) {
		return false
	}
	for _, c := range n.children {
		if !t.emit(c, depth+1, order, yield) {
			return false
		}
	}
	if order == PostOrder && !yield(line) {
		return false
	}
	return true
}

// Ensure LinkedTree implements Tree.
var _ Tree = (*LinkedTree)(nil)
