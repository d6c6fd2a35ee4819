// Package render converts a category tree into Graphviz outputs:
// DOT text for further processing and SVG for direct display.
package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/taxo/pkg/tree"
)

// Options configures DOT generation.
type Options struct {
	// Rankdir sets the layout direction ("TB" top-to-bottom by
	// default, "LR" for left-to-right).
	Rankdir string

	// ShowDepth appends each node's depth to its label.
	ShowDepth bool
}

// ToDOT converts a category tree to Graphviz DOT format. Nodes are
// numbered in preorder so that equal labels in different branches stay
// distinct; the category label is carried in the label attribute.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(t *tree.LinkedTree, opts Options) string {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph categories {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	ids := make(map[tree.Position]int)
	next := 0
	for p := range t.Preorder() {
		ids[p] = next
		label := p.Element()
		if opts.ShowDepth {
			d, _ := tree.Depth(t, p)
			label = fmt.Sprintf("%s\ndepth: %d", label, d)
		}
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", next, label)
		next++
	}

	buf.WriteString("\n")
	for p := range t.Preorder() {
		if tree.IsRoot(t, p) {
			continue
		}
		parent, _ := t.Parent(p)
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", ids[parent], ids[p])
	}

	buf.WriteString("}\n")
	return buf.String()
}
