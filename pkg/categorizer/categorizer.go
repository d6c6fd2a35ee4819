// Package categorizer builds a category hierarchy from comma-delimited
// path lines and renders it as indented traversals.
//
// Each input line is a path from the conceptual root toward a leaf:
//
//	Electronics
//	Electronics,Phones,Smartphones
//	Electronics,Phones,Feature Phones
//
// Lines are merged into a single tree so that repeated prefixes share
// nodes: a parent never ends up with two children carrying the same
// label. The very first line fed to an empty tree is installed whole
// (trimmed, not split on commas) as the root label; every later line
// is comma-split and walked label by label from the root.
//
// The categorizer never touches the filesystem. Callers feed it lines
// and drain the rendered traversals into whatever sink they like (see
// pkg/taxoio for the file-backed collaborators).
package categorizer

import (
	"iter"
	"strings"

	"github.com/matzehuels/taxo/pkg/tree"
)

// Categorizer incrementally grows a category tree from path lines.
// The zero value is not usable - use New.
//
// Construction walks a cursor through the tree: the cursor starts at
// the root for every line and advances into each label's node,
// creating missing children along the way. A label equal to the
// root's element snaps the cursor back to the root instead of
// descending, which lets paths repeat the root label as their first
// segment.
type Categorizer struct {
	tree   *tree.LinkedTree
	cursor tree.Position
}

// New creates a categorizer with an empty tree.
func New() *Categorizer {
	return &Categorizer{tree: tree.New()}
}

// Tree returns the underlying tree. It is empty until the first call
// to Consume.
func (c *Categorizer) Tree() *tree.LinkedTree { return c.tree }

// Consume merges one path line into the tree.
//
// On an empty tree the entire line, trimmed but not split, becomes the
// root label. Later lines are split on commas, each label trimmed, and
// walked from the root: known labels descend, unknown labels create a
// new child of the cursor and descend into it. Empty labels are
// ordinary labels; no validation rejects them.
func (c *Categorizer) Consume(line string) error {
	if tree.IsEmpty(c.tree) {
		root, err := c.tree.AddRoot(strings.TrimSpace(line))
		if err != nil {
			return err
		}
		c.cursor = root
		return nil
	}

	// Each line is an independent root-to-leaf path.
	c.cursor = c.tree.Root()

	for _, label := range strings.Split(line, ",") {
		label = strings.TrimSpace(label)
		if c.tree.Root().Element() == label {
			c.cursor = c.tree.Root()
			continue
		}
		next, ok, err := c.tree.FindChildByValue(c.cursor, label)
		if err != nil {
			return err
		}
		if !ok {
			next, err = c.tree.AddChild(c.cursor, label)
			if err != nil {
				return err
			}
		}
		c.cursor = next
	}
	return nil
}

// Build consumes every line of the sequence in order. An empty
// sequence leaves the tree empty.
func (c *Categorizer) Build(lines iter.Seq[string]) error {
	for line := range lines {
		if err := c.Consume(line); err != nil {
			return err
		}
	}
	return nil
}

// BuildFromLines consumes a slice of lines in order.
func (c *Categorizer) BuildFromLines(lines []string) error {
	for _, line := range lines {
		if err := c.Consume(line); err != nil {
			return err
		}
	}
	return nil
}

// Preorder returns the indented preorder rendering of the tree, one
// line per node. Empty for an empty tree.
func (c *Categorizer) Preorder() iter.Seq[string] {
	return c.tree.Lines(tree.PreOrder)
}

// Postorder returns the indented postorder rendering of the tree, one
// line per node. Empty for an empty tree.
func (c *Categorizer) Postorder() iter.Seq[string] {
	return c.tree.Lines(tree.PostOrder)
}

// Render concatenates a traversal into a single string, preorder when
// pre is true, postorder otherwise.
func (c *Categorizer) Render(pre bool) string {
	var b strings.Builder
	order := tree.PostOrder
	if pre {
		order = tree.PreOrder
	}
	for line := range c.tree.Lines(order) {
		b.WriteString(line)
	}
	return b.String()
}
