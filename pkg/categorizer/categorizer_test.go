package categorizer

import (
	"slices"
	"testing"

	"github.com/matzehuels/taxo/pkg/tree"
)

func collect(t *testing.T, c *Categorizer, pre bool) []string {
	t.Helper()
	var got []string
	if pre {
		for line := range c.Preorder() {
			got = append(got, line)
		}
	} else {
		for line := range c.Postorder() {
			got = append(got, line)
		}
	}
	return got
}

func TestEmptyInput(t *testing.T) {
	c := New()
	if err := c.BuildFromLines(nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !tree.IsEmpty(c.Tree()) {
		t.Errorf("tree not empty, len = %d", c.Tree().Len())
	}
	if got := collect(t, c, true); got != nil {
		t.Errorf("preorder of empty tree = %q", got)
	}
	if got := collect(t, c, false); got != nil {
		t.Errorf("postorder of empty tree = %q", got)
	}
}

func TestFirstLineInstalledWhole(t *testing.T) {
	// The first line is never comma-split: it becomes the root label
	// verbatim (after trimming). This asymmetry with later lines is
	// deliberate; see DESIGN.md.
	c := New()
	if err := c.Consume("  Electronics, Phones "); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	root := c.Tree().Root()
	if root == nil || root.Element() != "Electronics, Phones" {
		t.Errorf("root = %v, want the unsplit first line", root)
	}
	if c.Tree().Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Tree().Len())
	}
}

func TestEndToEnd(t *testing.T) {
	// Scenario from the product data set: the root line followed by a
	// full path. Under the per-line cursor policy, "Smartphones" must
	// end up under "Phones", not under the root.
	c := New()
	lines := []string{
		"Electronics",
		"Electronics,Phones,Smartphones",
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr := c.Tree()
	if tr.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tr.Len())
	}

	phones, ok, err := tr.FindChildByValue(tr.Root(), "Phones")
	if err != nil || !ok {
		t.Fatalf("Phones not under root: ok=%v err=%v", ok, err)
	}
	smart, ok, err := tr.FindChildByValue(phones, "Smartphones")
	if err != nil || !ok {
		t.Fatalf("Smartphones not under Phones: ok=%v err=%v", ok, err)
	}

	parent, err := tr.Parent(smart)
	if err != nil {
		t.Fatalf("Parent: %v", err)
	}
	if parent != phones {
		t.Errorf("parent of Smartphones = %q, want Phones", parent.Element())
	}
}

func TestCursorResetsPerLine(t *testing.T) {
	// The second path must branch from the root, not continue from
	// wherever the previous line left the cursor.
	c := New()
	lines := []string{
		"Electronics",
		"Electronics,Phones,Smartphones",
		"Electronics,Computers,Laptops",
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr := c.Tree()
	computers, ok, _ := tr.FindChildByValue(tr.Root(), "Computers")
	if !ok {
		t.Fatalf("Computers not under root")
	}
	d, _ := tree.Depth(tr, computers)
	if d != 1 {
		t.Errorf("depth(Computers) = %d, want 1", d)
	}
	if _, ok, _ := tr.FindChildByValue(computers, "Laptops"); !ok {
		t.Errorf("Laptops not under Computers")
	}
}

func TestSharedPrefixesMerge(t *testing.T) {
	c := New()
	lines := []string{
		"Electronics",
		"Electronics,Phones,Smartphones",
		"Electronics,Phones,Feature Phones",
		"Electronics,Phones,Smartphones", // duplicate path, no new nodes
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr := c.Tree()
	if tr.Len() != 4 {
		t.Errorf("Len = %d, want 4", tr.Len())
	}

	phones, _, _ := tr.FindChildByValue(tr.Root(), "Phones")
	n, _ := tr.NumChildren(phones)
	if n != 2 {
		t.Errorf("Phones has %d children, want 2", n)
	}
}

func TestRootLabelMidPath(t *testing.T) {
	// A label equal to the root's element snaps the cursor back to the
	// root instead of descending.
	c := New()
	lines := []string{
		"A",
		"A,B,A,C",
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr := c.Tree()
	cPos, ok, _ := tr.FindChildByValue(tr.Root(), "C")
	if !ok {
		t.Fatalf("C not under root after root-label snap")
	}
	d, _ := tree.Depth(tr, cPos)
	if d != 1 {
		t.Errorf("depth(C) = %d, want 1", d)
	}
}

func TestLabelsTrimmed(t *testing.T) {
	c := New()
	lines := []string{
		"Electronics",
		"Electronics ,  Phones ,\tSmartphones",
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr := c.Tree()
	if _, ok, _ := tr.FindChildByValue(tr.Root(), "Phones"); !ok {
		t.Errorf("trimmed label Phones not found")
	}
}

func TestEmptyLabelAccepted(t *testing.T) {
	c := New()
	lines := []string{
		"Electronics",
		"Electronics,,Phones",
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr := c.Tree()
	empty, ok, _ := tr.FindChildByValue(tr.Root(), "")
	if !ok {
		t.Fatalf("empty label not stored under root")
	}
	if _, ok, _ := tr.FindChildByValue(empty, "Phones"); !ok {
		t.Errorf("Phones not under the empty label")
	}
}

func TestSingleLabelLines(t *testing.T) {
	c := New()
	lines := []string{
		"Electronics",
		"Phones",
		"Computers",
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr := c.Tree()
	if tr.Len() != 3 {
		t.Errorf("Len = %d, want 3", tr.Len())
	}
	var children []string
	seq, _ := tr.Children(tr.Root())
	for p := range seq {
		children = append(children, p.Element())
	}
	if want := []string{"Phones", "Computers"}; !slices.Equal(children, want) {
		t.Errorf("root children = %v, want %v", children, want)
	}
}

func TestRender(t *testing.T) {
	c := New()
	lines := []string{
		"A",
		"A,B",
		"A,C",
	}
	if err := c.BuildFromLines(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got, want := c.Render(true), "A\n\tB\n\tC\n"; got != want {
		t.Errorf("preorder = %q, want %q", got, want)
	}
	if got, want := c.Render(false), "\tB\n\tC\nA\n"; got != want {
		t.Errorf("postorder = %q, want %q", got, want)
	}
}

func TestBuildSeq(t *testing.T) {
	c := New()
	lines := slices.Values([]string{"A", "A,B"})
	if err := c.Build(lines); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if c.Tree().Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Tree().Len())
	}
}
