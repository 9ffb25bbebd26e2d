package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmlgraph/nmlgraph/pkg/cache"
	"github.com/nmlgraph/nmlgraph/pkg/topology"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"

	// renderTTL bounds how long cached render artifacts stay valid.
	renderTTL = 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path
	format   string // output format: dot, svg, png
	detailed bool   // include entity identifiers in labels
	noCache  bool   // bypass the artifact cache
	redisURL string // optional shared Redis cache
}

// renderCommand creates the render command, which draws a topology as a
// Graphviz diagram. SVG and PNG artifacts are cached keyed on the DOT
// source, so unchanged manifests render instantly.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a topology as a Graphviz diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatDOT, formatSVG, formatPNG:
			default:
				return fmt.Errorf("unsupported format %q (dot, svg, png)", opts.format)
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include entity identifiers in labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for a shared artifact cache")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, manifest string, opts *renderOpts) error {
	m, err := buildFromManifest(manifest)
	if err != nil {
		return err
	}
	dot := topology.ToDOT(m, topology.Options{Detailed: opts.detailed})

	if opts.format == formatDOT {
		return c.writeArtifact(opts.output, []byte(dot), m, false)
	}

	artifacts, err := newCache(ctx, opts.noCache, opts.redisURL)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer artifacts.Close()

	key := cache.RenderKey(dot, opts.format)
	if data, hit, err := artifacts.Get(ctx, key); err == nil && hit {
		c.Logger.Debug("render cache hit", "key", key)
		return c.writeArtifact(opts.output, data, m, true)
	}

	sp := newSpinner("Rendering " + opts.format)
	sp.Start()
	var data []byte
	if opts.format == formatPNG {
		data, err = topology.RenderPNG(ctx, dot)
	} else {
		data, err = topology.RenderSVG(ctx, dot)
	}
	sp.Stop()
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if err := artifacts.Set(ctx, key, data, renderTTL); err != nil {
		c.Logger.Debug("render cache store failed", "err", err)
	}
	return c.writeArtifact(opts.output, data, m, false)
}

func (c *CLI) writeArtifact(path string, data []byte, m *topology.Manager, cached bool) error {
	w, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer w.Close()

	if _, err := w.Write(data); err != nil {
		return err
	}
	if path != "" {
		printSuccess("Rendered %d nodes", len(m.Nodes()))
		printStats(len(m.Nodes()), len(m.Bilinks()), cached)
		printFile(path)
	}
	return nil
}
