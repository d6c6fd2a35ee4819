package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/taxo/pkg/cache"
	"github.com/matzehuels/taxo/pkg/categorizer"
	"github.com/matzehuels/taxo/pkg/errors"
	"github.com/matzehuels/taxo/pkg/taxoio"
	"github.com/matzehuels/taxo/pkg/tree"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete build → render pipeline with caching.
// Every error is fatal to the run: there is no partial-tree recovery
// and no retrying.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build
	buildStart := time.Now()
	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read input %s", opts.Input)
	}
	result.InputHash = cache.Hash(raw)

	lines, err := taxoio.ReadLines(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.Input, err)
	}

	cat := categorizer.New()
	if err := cat.BuildFromLines(lines); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Tree = cat.Tree()
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.LineCount = len(lines)
	result.Stats.NodeCount = result.Tree.Len()
	if !tree.IsEmpty(result.Tree) {
		h, err := tree.Height(result.Tree, nil)
		if err != nil {
			return nil, fmt.Errorf("height: %w", err)
		}
		result.Stats.Height = h
	}

	opts.Logger.Info("built category tree",
		"run", result.RunID,
		"lines", result.Stats.LineCount,
		"nodes", result.Stats.NodeCount,
		"height", result.Stats.Height,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCache(ctx, cat, opts, result.InputHash)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered artifacts",
		"run", result.RunID,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCache serves artifacts from the cache when possible and
// renders the rest. The boolean reports whether every requested
// artifact came from the cache.
func (r *Runner) renderWithCache(ctx context.Context, cat *categorizer.Categorizer, opts Options, inputHash string) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		key := cache.ArtifactKey(inputHash, format)

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
				continue
			}
		}
		allCached = false

		data, err := renderArtifact(cat, format)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return artifacts, allCached && len(opts.Formats) > 0, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
