package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/chart/anim"
	"github.com/gogpu/chart/manifest"
	"github.com/gogpu/chart/surface"
	"github.com/gogpu/chart/surface/headless"
	"github.com/gogpu/chart/surface/svgsurface"
	"github.com/gogpu/chart/view"
)

func newFramesCmd() *cobra.Command {
	var (
		o   overrides
		fps int
		dir string
	)
	cmd := &cobra.Command{
		Use:   "frames [manifest.yaml]",
		Short: "Play the entrance animation on a simulated clock",
		Long: `frames plays the entrance animation at a fixed frame rate without
waiting in real time. It prints one line per frame, or with --dir writes
every frame as a numbered SVG file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := o.apply(m); err != nil {
				return err
			}
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}
			rec, err := play(cmd.Context(), m, time.Second/time.Duration(fps))
			if err != nil {
				return err
			}
			if dir != "" {
				return writeFrames(rec, dir)
			}
			summarize(rec, cmd.OutOrStdout(), time.Second/time.Duration(fps))
			return nil
		},
	}
	o.register(cmd)
	cmd.Flags().IntVar(&fps, "fps", 60, "Frames per second")
	cmd.Flags().StringVar(&dir, "dir", "", "Write frame-NNNN.svg files into this directory")
	return cmd
}

// play runs the animation with the chart fully visible from the start.
func play(ctx context.Context, m *manifest.Manifest, step time.Duration) (*headless.Recorder, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := m.Chart
	cfg.Animated = true
	rec := headless.New()
	c, err := view.New(rec, cfg)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	if err := c.Load(ctx, m.Source()); err != nil {
		return nil, err
	}

	now := time.Unix(0, 0)
	c.SetVisibility(1, now)
	for c.Tick(now) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		now = now.Add(step)
	}
	if c.State() != anim.StateDone {
		return nil, fmt.Errorf("animation stopped in state %s", c.State())
	}
	return rec, nil
}

func summarize(rec *headless.Recorder, w io.Writer, step time.Duration) {
	for i, f := range rec.Frames() {
		clip := "none"
		if f.Clip != nil {
			clip = fmt.Sprintf("%d elements", f.Clip.Len())
		}
		fmt.Fprintf(w, "frame %4d  t=%-8s elements=%d clip=%s\n",
			i, time.Duration(max(i-1, 0))*step, len(f.Elements), clip)
	}
}

func writeFrames(rec *headless.Recorder, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, f := range rec.Frames() {
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.svg", i))
		if err := writeFrame(&f, path); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

func writeFrame(f *headless.Frame, path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return drawFrame(svgsurface.New(out), f)
}

// drawFrame replays one recorded frame onto s.
func drawFrame(s surface.Surface, f *headless.Frame) error {
	if err := s.Begin(f.Width, f.Height); err != nil {
		return err
	}
	for _, e := range f.Elements {
		if err := s.DrawPath(e.ID, e.Outline(), e.Style); err != nil {
			return err
		}
	}
	if f.Clip != nil {
		if err := s.SetClip(f.Clip); err != nil {
			return err
		}
	}
	return s.End()
}
