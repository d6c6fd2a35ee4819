// Package taxoio provides the file-facing collaborators of the
// categorizer: line-sequence input, text-sink output, and a JSON
// round-trip of the category tree. The core packages never open
// files themselves; everything path-shaped lives here.
package taxoio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadLines consumes r as newline-delimited text and returns its
// lines without terminators. ReadLines does not close r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return lines, nil
}

// ImportLines reads the file at path and returns its lines.
// This is a convenience wrapper around [ReadLines] for file-based
// input; a missing or unreadable file surfaces to the caller with the
// path for context.
func ImportLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLines(f)
}
