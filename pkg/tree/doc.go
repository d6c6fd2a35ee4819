// Package tree provides a general-purpose rooted, ordered,
// multi-child tree built around positional access.
//
// The package is split into two layers:
//
//   - [Tree] is the minimal positional contract any tree variant must
//     satisfy: root, parent, child count, child iteration, and total
//     size. Everything else ([IsRoot], [IsLeaf], [IsEmpty], [Depth],
//     [Height]) is derived once from those primitives and works with
//     any implementation.
//   - [LinkedTree] is the node-linked realization used by the
//     categorizer: it adds mutation (AddRoot, AddChild, AddNode),
//     lazy preorder/postorder line traversals, path-to-root lookup,
//     and child lookup by label.
//
// A [Position] is an opaque handle tied to one tree instance. Two
// positions are equal (==) exactly when they reference the same node
// of the same tree. Positions from a different tree, or positions
// whose node has been marked removed, fail validation with
// [ErrInvalidPosition] instead of silently dereferencing.
//
// # Example
//
//	t := tree.New()
//	root, _ := t.AddRoot("Electronics")
//	phones, _ := t.AddChild(root, "Phones")
//	t.AddChild(phones, "Smartphones")
//
//	for line := range t.Lines(tree.PreOrder) {
//	    fmt.Print(line)
//	}
//
// LinkedTree is not safe for concurrent use without external
// synchronization.
package tree
