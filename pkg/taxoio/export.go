package taxoio

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
)

// WriteLines drains the line sequence into w. Lines are expected to
// carry their own terminators (the tree traversals do). WriteLines
// does not close w.
func WriteLines(w io.Writer, lines iter.Seq[string]) error {
	bw := bufio.NewWriter(w)
	for line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return bw.Flush()
}

// ExportLines writes the line sequence to the file at path,
// truncating any previous content. This is a convenience wrapper
// around [WriteLines] for file-based output.
func ExportLines(path string, lines iter.Seq[string]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteLines(f, lines); err != nil {
		return err
	}
	return f.Close()
}

// ExportBytes writes data to the file at path, truncating any
// previous content. Used for rendered artifacts that are already
// materialized (JSON, DOT, SVG).
func ExportBytes(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
