package taxoio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/taxo/pkg/tree"
)

// jsonNode is the serialized form of one category and its subtree.
type jsonNode struct {
	Label    string     `json:"label"`
	Children []jsonNode `json:"children,omitempty"`
}

// WriteJSON encodes the category tree as nested JSON and writes it to
// w. An empty tree encodes as null. The output can be re-imported
// with [ReadJSON] for round-trip processing.
func WriteJSON(t *tree.LinkedTree, w io.Writer) error {
	var root *jsonNode
	if t.Root() != nil {
		n, err := marshalNode(t, t.Root())
		if err != nil {
			return err
		}
		root = &n
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func marshalNode(t *tree.LinkedTree, p tree.Position) (jsonNode, error) {
	n := jsonNode{Label: p.Element()}
	children, err := t.Children(p)
	if err != nil {
		return jsonNode{}, err
	}
	for c := range children {
		child, err := marshalNode(t, c)
		if err != nil {
			return jsonNode{}, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// ReadJSON decodes a nested JSON document produced by [WriteJSON]
// into a fresh tree. The tree is rebuilt through AddRoot/AddChild, so
// construction invariants (unique sibling labels, size accounting)
// hold for the result. A null document yields an empty tree.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.LinkedTree, error) {
	var root *jsonNode
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	t := tree.New()
	if root == nil {
		return t, nil
	}
	rootPos, err := t.AddRoot(root.Label)
	if err != nil {
		return nil, err
	}
	if err := unmarshalChildren(t, rootPos, root.Children); err != nil {
		return nil, err
	}
	return t, nil
}

func unmarshalChildren(t *tree.LinkedTree, p tree.Position, children []jsonNode) error {
	for _, c := range children {
		pos, err := t.AddChild(p, c.Label)
		if err != nil {
			return fmt.Errorf("node %q: %w", c.Label, err)
		}
		if err := unmarshalChildren(t, pos, c.Children); err != nil {
			return err
		}
	}
	return nil
}

// ExportJSON writes the tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based
// output.
func ExportJSON(t *tree.LinkedTree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
func ImportJSON(path string) (*tree.LinkedTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
