// Package pipeline orchestrates the taxo build: read category paths,
// grow the tree, and render the requested artifacts.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: read the input lines and merge them into a category tree
//  2. Render: produce the requested artifacts (pre, post, json, dot, svg)
//
// Rendered artifacts are cached keyed by a hash of the raw input
// content, so rebuilding an unchanged file serves the outputs without
// re-rendering. The build stage always runs - it is cheap and the
// resulting tree is part of the pipeline result.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Input:   "categories.txt",
//	    Formats: []string{pipeline.FormatPre, pipeline.FormatPost},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pre := result.Artifacts[pipeline.FormatPre]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/taxo/pkg/errors"
	"github.com/matzehuels/taxo/pkg/tree"
)

// Format constants for output artifacts.
const (
	FormatPre  = "pre"  // indented preorder traversal
	FormatPost = "post" // indented postorder traversal
	FormatJSON = "json" // nested JSON document
	FormatDOT  = "dot"  // Graphviz DOT text
	FormatSVG  = "svg"  // SVG rendered from DOT
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPre:  true,
	FormatPost: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// DefaultFormats are the artifacts produced when none are requested:
// the two classic traversal files.
var DefaultFormats = []string{FormatPre, FormatPost}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: pre, post, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the path of the category file to read.
	Input string

	// Formats lists the artifacts to render. Defaults to
	// [DefaultFormats] when empty.
	Formats []string

	// Refresh bypasses the artifact cache and re-renders everything.
	Refresh bool

	// Logger receives progress events. Defaults to a discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run in logs.
	RunID string

	// Tree is the constructed category tree.
	Tree *tree.LinkedTree

	// InputHash is the SHA-256 of the raw input content, the basis of
	// all artifact cache keys.
	InputHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LineCount  int
	NodeCount  int
	Height     int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}
