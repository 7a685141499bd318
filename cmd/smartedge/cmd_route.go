package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"honnef.co/go/smartedge"
)

type routeFlags struct {
	output    string
	verbose   bool
	precision int
	opts      smartedge.Options
}

var errInvalidFlags = errors.New("invalid flags")

// flagValues mirrors the numeric flags for validation. Unlike the zero value of
// smartedge.Options, a zero flag is never replaced by a default.
type flagValues struct {
	Precision       int     `validate:"gte=0"`
	Spacing         float64 `validate:"gt=0,finite"`
	Iterations      int     `validate:"gt=0"`
	NodeRadius      float64 `validate:"gt=0,finite"`
	InfluenceRadius float64 `validate:"gt=0,finite"`
	ForceStrength   float64 `validate:"ne=0,finite"`
	MaxForce        float64 `validate:"gt=0,finite"`
}

func (f *routeFlags) validate() error {
	v := flagValues{
		Precision:       f.precision,
		Spacing:         f.opts.Spacing,
		Iterations:      f.opts.Iterations,
		NodeRadius:      f.opts.NodeRadius,
		InfluenceRadius: f.opts.InfluenceRadius,
		ForceStrength:   f.opts.ForceStrength,
		MaxForce:        f.opts.MaxForce,
	}
	if err := validate.Struct(&v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidFlags, err)
	}
	return nil
}

func newRouteCmd() *cobra.Command {
	var f routeFlags
	cmd := &cobra.Command{
		Use:   "route [file]",
		Short: "Route all edges of a diagram and write it as SVG",
		Long: `Reads a YAML or JSON diagram, routes every edge around the diagram's
nodes and writes an SVG document.

Diagram format:
  nodeSize: 120        # default node width and height
  nodes:
    - {id: a, x: 0, y: 0}
    - {id: b, x: 400, y: 0}
  edges:
    - {source: a, target: b}

Examples:
  smartedge route diagram.yaml > diagram.svg
  smartedge route --influence-radius 150 -o out.svg diagram.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			return runRoute(cmd, args, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "write the SVG to this file instead of standard output")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fl.IntVar(&f.precision, "precision", 0, "maximum number of decimals in path data (0 for exact)")
	fl.Float64Var(&f.opts.Spacing, "spacing", smartedge.DefaultSpacing, "target distance between control points (> 0)")
	fl.IntVar(&f.opts.Iterations, "iterations", smartedge.DefaultIterations, "number of relaxation passes (> 0)")
	fl.Float64Var(&f.opts.NodeRadius, "node-radius", smartedge.DefaultNodeRadius, "radius of a node's hard core (> 0)")
	fl.Float64Var(&f.opts.InfluenceRadius, "influence-radius", smartedge.DefaultInfluenceRadius, "distance beyond which nodes don't affect edges (> 0)")
	fl.Float64Var(&f.opts.ForceStrength, "force-strength", smartedge.DefaultForceStrength, "base strength of the repulsive force (non-zero)")
	fl.Float64Var(&f.opts.MaxForce, "max-force", smartedge.DefaultMaxForce, "maximum force per control point and pass (> 0)")
	return cmd
}

func runRoute(cmd *cobra.Command, args []string, f *routeFlags) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening diagram: %w", err)
		}
		defer file.Close()
		in = file
		source = args[0]
	}

	d, err := decodeDiagram(in)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("loaded diagram",
		slog.String("source", source),
		slog.Int("nodes", len(d.Nodes)),
		slog.Int("edges", len(d.Edges)))

	start := time.Now()
	paths, err := smartedge.RouteAll(cmd.Context(), d.obstacles(), d.edges(), f.opts)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("routed edges",
		slog.Int("edges", len(paths)),
		slog.Duration("elapsed", time.Since(start)))

	svgOpts := smartedge.SVGOptions{MaxPrecision: f.precision}
	if f.output == "" {
		if err := renderSVG(cmd.OutOrStdout(), d, paths, svgOpts); err != nil {
			return fmt.Errorf("writing SVG: %w", err)
		}
		return nil
	}

	file, err := os.Create(f.output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := renderSVG(file, d, paths, svgOpts); err != nil {
		file.Close()
		return fmt.Errorf("writing SVG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	logger.Info("wrote diagram", slog.String("output", f.output))
	return nil
}
