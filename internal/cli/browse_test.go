package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/taxo/pkg/categorizer"
)

func browseFixture(t *testing.T) browseModel {
	t.Helper()
	cat := categorizer.New()
	err := cat.BuildFromLines([]string{
		"Electronics",
		"Electronics,Phones",
		"Electronics,Phones,Smartphones",
		"Electronics,Computers",
	})
	if err != nil {
		t.Fatal(err)
	}
	m, err := newBrowseModel("categories.txt", cat.Tree())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestBrowseModelFlattening(t *testing.T) {
	m := browseFixture(t)

	want := []browseItem{
		{label: "Electronics", depth: 0, children: 2},
		{label: "Phones", depth: 1, children: 1},
		{label: "Smartphones", depth: 2, children: 0},
		{label: "Computers", depth: 1, children: 0},
	}

	if len(m.items) != len(want) {
		t.Fatalf("items = %d, want %d", len(m.items), len(want))
	}
	for i, w := range want {
		if m.items[i] != w {
			t.Errorf("items[%d] = %+v, want %+v", i, m.items[i], w)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{}
}

func TestBrowseModelNavigation(t *testing.T) {
	m := browseFixture(t)

	next, _ := m.Update(keyMsg("down"))
	m = next.(browseModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(browseModel)
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d after G, want %d", m.cursor, len(m.items)-1)
	}

	// down at the end stays put
	next, _ = m.Update(keyMsg("down"))
	m = next.(browseModel)
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.items)-1)
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(browseModel)
	if m.cursor != 0 || m.offset != 0 {
		t.Errorf("cursor, offset = %d, %d after g, want 0, 0", m.cursor, m.offset)
	}

	// up at the top stays put
	next, _ = m.Update(keyMsg("up"))
	m = next.(browseModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := browseFixture(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestBrowseModelScrolling(t *testing.T) {
	m := browseFixture(t)
	m.height = 2

	for i := 0; i < 3; i++ {
		next, _ := m.Update(keyMsg("down"))
		m = next.(browseModel)
	}
	if m.cursor != 3 {
		t.Fatalf("cursor = %d, want 3", m.cursor)
	}
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2", m.offset)
	}
}

func TestBrowseModelView(t *testing.T) {
	m := browseFixture(t)

	view := m.View()
	for _, label := range []string{"Electronics", "Phones", "Smartphones", "Computers"} {
		if !strings.Contains(view, label) {
			t.Errorf("view should contain %q", label)
		}
	}
	if !strings.Contains(view, "[1/4]") {
		t.Error("view should show the cursor position footer")
	}
}
