package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taxo/pkg/pipeline"
	"github.com/matzehuels/taxo/pkg/taxoio"
)

// buildOpts holds the resolved settings for one build run after merging
// flags and config.
type buildOpts struct {
	formats []string
	output  string
	refresh bool
	noCache bool
}

// buildCommand creates the build command, the main entry point of the
// tool: read a category file, grow the tree, write artifact files.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		configPath string
		refresh    bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Build the classification tree and write traversal files",
		Long: `Build the classification tree from a category file and write the
requested artifacts.

Each input line is a comma-delimited category path. Lines sharing a
prefix are merged into one hierarchy. By default the preorder and
postorder traversals are written as pre.txt and post.txt next to the
input file; --format adds json, dot, or svg outputs.

Rendered artifacts are cached locally keyed by the input content, so
rebuilding an unchanged file is instant. Use --refresh to re-render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			opts := buildOpts{
				formats: cfg.Formats,
				output:  cfg.Output,
				refresh: refresh,
				noCache: noCache || cfg.NoCache,
			}
			if formatsStr != "" {
				opts.formats = parseFormats(formatsStr)
			}
			if output != "" {
				opts.output = output
			}
			if len(opts.formats) == 0 {
				opts.formats = pipeline.DefaultFormats
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}

			return c.runBuild(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pre, post (default), json, dot, svg (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: alongside the input file)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: taxo.toml if present)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when cached artifacts exist")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runBuild executes the pipeline and writes the artifacts.
func (c *CLI) runBuild(ctx context.Context, input string, opts buildOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Formats: opts.formats,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Built %d categories from %s", result.Stats.NodeCount, input))

	outDir := opts.output
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	printSuccess("Built %s", input)
	printStats(result.Stats.NodeCount, result.Stats.Height, result.CacheInfo.RenderHit)

	for _, format := range opts.formats {
		path := filepath.Join(outDir, pipeline.ArtifactFilename(format))
		if err := taxoio.ExportBytes(path, result.Artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	return nil
}
