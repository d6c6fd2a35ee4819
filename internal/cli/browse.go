package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/taxo/pkg/categorizer"
	"github.com/matzehuels/taxo/pkg/taxoio"
	"github.com/matzehuels/taxo/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive tree viewer.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse the classification tree interactively",
		Long: `Browse the classification tree built from a category file in an
interactive terminal viewer. Navigate with the arrow keys or j/k,
jump with g/G, quit with q.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(args[0])
		},
	}
}

func runBrowse(input string) error {
	lines, err := taxoio.ImportLines(input)
	if err != nil {
		return err
	}

	cat := categorizer.New()
	if err := cat.BuildFromLines(lines); err != nil {
		return err
	}

	if tree.IsEmpty(cat.Tree()) {
		printInfo("Tree is empty")
		return nil
	}

	model, err := newBrowseModel(input, cat.Tree())
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model).Run()
	return err
}

// browseItem is one row of the flattened preorder listing.
type browseItem struct {
	label    string
	depth    int
	children int
}

// browseModel is the bubbletea model for the interactive tree viewer.
// The tree is flattened once in preorder; navigation moves a cursor
// over the flat listing with viewport scrolling.
type browseModel struct {
	title  string
	items  []browseItem
	cursor int
	offset int
	height int
}

// newBrowseModel flattens the tree in preorder into list items.
func newBrowseModel(title string, t *tree.LinkedTree) (browseModel, error) {
	var items []browseItem
	for p := range t.Preorder() {
		depth, err := tree.Depth(t, p)
		if err != nil {
			return browseModel{}, err
		}
		n, err := t.NumChildren(p)
		if err != nil {
			return browseModel{}, err
		}
		items = append(items, browseItem{label: p.Element(), depth: depth, children: n})
	}
	return browseModel{title: title, items: items, height: 15}, nil
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor = 0
			m.offset = 0
		case "G", "end":
			m.cursor = len(m.items) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G jump  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := m.offset; i < end; i++ {
		item := m.items[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		line := cursor + strings.Repeat("  ", item.depth) + item.label
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line) + childSuffix(item))
		} else {
			b.WriteString(listNormalStyle.Render(line) + childSuffix(item))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.items))))

	return b.String()
}

// childSuffix renders the dim child-count marker for internal nodes.
func childSuffix(item browseItem) string {
	if item.children == 0 {
		return ""
	}
	return listDimStyle.Render(fmt.Sprintf(" (%d)", item.children))
}
