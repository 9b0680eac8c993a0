// Command chartgen renders chart manifests.
//
//	chartgen render sales.yaml -o sales.svg
//	chartgen frames sales.yaml --fps 30 --dir frames/
//	chartgen surfaces
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/manifest"
	"github.com/gogpu/chart/surface"
	_ "github.com/gogpu/chart/surface/headless"
	_ "github.com/gogpu/chart/surface/raster"
	_ "github.com/gogpu/chart/surface/svgsurface"
	"github.com/gogpu/chart/view"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "chartgen",
		Short:         "Render vector charts from YAML manifests",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			chart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log geometry and lifecycle details")
	root.AddCommand(newRenderCmd(), newFramesCmd(), newSurfacesCmd())
	return root
}

// overrides are flags that take precedence over the manifest.
type overrides struct {
	surface string
	output  string
	typ     string
	width   float64
	height  float64
}

func (o *overrides) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file path (default: manifest output.path, else stdout)")
	cmd.Flags().StringVar(&o.typ, "type", "", "Chart type override")
	cmd.Flags().Float64Var(&o.width, "width", 0, "Canvas width override")
	cmd.Flags().Float64Var(&o.height, "height", 0, "Canvas height override")
}

func (o *overrides) apply(m *manifest.Manifest) error {
	if o.typ != "" {
		t, err := chart.ParseType(o.typ)
		if err != nil {
			return err
		}
		m.Chart.Type = t
	}
	if o.width > 0 {
		m.Chart.Width = o.width
	}
	if o.height > 0 {
		m.Chart.Height = o.height
	}
	if o.surface != "" {
		m.Output.Surface = o.surface
	}
	if o.output != "" {
		m.Output.Path = o.output
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "render [manifest.yaml]",
		Short: "Render the final static chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := o.apply(m); err != nil {
				return err
			}
			return render(cmd.Context(), m, cmd.OutOrStdout())
		},
	}
	o.register(cmd)
	cmd.Flags().StringVarP(&o.surface, "surface", "s", "", "Surface name (default: manifest output.surface, else the highest-priority surface)")
	return cmd
}

func render(ctx context.Context, m *manifest.Manifest, stdout io.Writer) (err error) {
	out, closeOut, err := openOutput(m, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	cfg := m.Chart
	cfg.Animated = false
	opts := surface.Options{
		Width:  int(cfg.Width),
		Height: int(cfg.Height),
		Output: out,
	}
	var s surface.Surface
	if name := m.Output.Surface; name != "" {
		s, err = surface.NewSurfaceByName(name, opts)
	} else {
		s, err = surface.NewSurface(opts)
	}
	if err != nil {
		return err
	}
	c, err := view.New(s, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	if ctx == nil {
		ctx = context.Background()
	}
	return c.Load(ctx, m.Source())
}

func openOutput(m *manifest.Manifest, stdout io.Writer) (io.Writer, func() error, error) {
	path := m.OutputPath()
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func newSurfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surfaces",
		Short: "List registered surfaces by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, a := range surface.Adapters() {
				presents := "in memory"
				if a.NeedsOutput {
					presents = "writes output"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %3d  %s\n", a.Name, a.Priority, presents)
			}
			return nil
		},
	}
}
