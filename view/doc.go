// Package view runs one chart instance: it loads data, builds geometry,
// draws it to a surface, and plays the entrance animation once.
//
// A Chart is driven by its host. Load resolves the data and renders;
// SetVisibility reports how much of the chart is on screen; Resize
// reports a new canvas size; Tick advances animation and debounced
// resizes on the host's frame clock. anim.Run provides a ticker loop:
//
//	c, err := view.New(svgsurface.New(w), cfg)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//	if err := c.Load(ctx, ingest.File{Path: "sales.csv"}); err != nil {
//	    return err
//	}
//	c.SetVisibility(1, time.Now())
//	return anim.Run(ctx, anim.DefaultFrameInterval, c)
//
// Every failure is logged through chart.Logger and leaves the instance
// unrendered; the error is also returned to the caller.
package view
