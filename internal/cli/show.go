package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/taxo/pkg/categorizer"
	"github.com/matzehuels/taxo/pkg/taxoio"
	"github.com/matzehuels/taxo/pkg/tree"
)

// showCommand creates the show command for printing the tree to stdout.
func (c *CLI) showCommand() *cobra.Command {
	var (
		postorder bool
		stats     bool
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print the classification tree to the terminal",
		Long: `Print the classification tree built from a category file as an
indented listing, styled by depth. The default ordering is preorder
(parents before children); --postorder lists children first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], postorder, stats)
		},
	}

	cmd.Flags().BoolVar(&postorder, "postorder", false, "list children before their parents")
	cmd.Flags().BoolVar(&stats, "stats", false, "print size, height, and leaf counts")

	return cmd
}

func runShow(ctx context.Context, input string, postorder, stats bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	lines, err := taxoio.ImportLines(input)
	if err != nil {
		return err
	}

	cat := categorizer.New()
	if err := cat.BuildFromLines(lines); err != nil {
		return err
	}
	t := cat.Tree()
	prog.done(fmt.Sprintf("Categorized %d lines into %d nodes", len(lines), t.Len()))

	if tree.IsEmpty(t) {
		printInfo("Tree is empty")
		return nil
	}

	order := tree.PreOrder
	if postorder {
		order = tree.PostOrder
	}
	for line := range t.Lines(order) {
		label := strings.TrimSuffix(line, "\n")
		depth := len(label) - len(strings.TrimLeft(label, "\t"))
		label = label[depth:]
		fmt.Println(strings.Repeat("  ", depth) + depthStyle(depth).Render(label))
	}

	if stats {
		height, err := tree.Height(t, nil)
		if err != nil {
			return err
		}
		printKeyValue("nodes", fmt.Sprintf("%d", t.Len()))
		printKeyValue("height", fmt.Sprintf("%d", height))
		printKeyValue("leaves", fmt.Sprintf("%d", leafCount(t)))
	}
	return nil
}

// depthStyle picks a style by node depth: the root stands out, first
// level categories are highlighted, everything deeper fades.
func depthStyle(depth int) lipgloss.Style {
	switch depth {
	case 0:
		return StyleTitle
	case 1:
		return StyleHighlight
	case 2:
		return StyleValue
	default:
		return StyleDim
	}
}

func leafCount(t *tree.LinkedTree) int {
	count := 0
	for p := range t.Preorder() {
		if leaf, err := tree.IsLeaf(t, p); err == nil && leaf {
			count++
		}
	}
	return count
}
