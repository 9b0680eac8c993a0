package chart

import "time"

// Option configures a Config.
//
// Example:
//
//	cfg := chart.NewConfig(
//	    chart.WithType(chart.TypeDonut),
//	    chart.WithPolarGap(4),
//	    chart.WithAnimation(800*time.Millisecond),
//	)
type Option func(*Config)

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithType sets the chart type.
func WithType(t Type) Option {
	return func(c *Config) { c.Type = t }
}

// WithSize sets the canvas size.
func WithSize(width, height float64) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAnimation enables the entrance animation with the given duration.
func WithAnimation(d time.Duration) Option {
	return func(c *Config) {
		c.Animated = true
		if d > 0 {
			c.Duration = d
		}
	}
}

// WithStagger overrides the per-primitive start offset. Zero derives the
// stagger from the duration and the primitive count.
func WithStagger(d time.Duration) Option {
	return func(c *Config) { c.Stagger = d }
}

// WithSmooth draws line series as curves instead of polylines.
func WithSmooth(smooth bool) Option {
	return func(c *Config) { c.Smooth = smooth }
}

// WithBarRadius sets the bar corner radius.
func WithBarRadius(r float64) Option {
	return func(c *Config) { c.BarRadius = r }
}

// WithStackGap sets the gap between stacked segments.
func WithStackGap(g float64) Option {
	return func(c *Config) { c.StackGap = g }
}

// WithPolarGap sets the gap between pie/donut slices.
func WithPolarGap(g float64) Option {
	return func(c *Config) { c.PolarGap = g }
}

// WithPolarRadius sets the maximum slice corner radius.
func WithPolarRadius(r float64) Option {
	return func(c *Config) { c.PolarRadius = r }
}

// WithRingWidth sets the donut ring width.
func WithRingWidth(w float64) Option {
	return func(c *Config) { c.RingWidth = w }
}

// WithAxisTitles sets the axis titles; a non-empty title reserves space.
func WithAxisTitles(x, y string) Option {
	return func(c *Config) {
		c.XAxisTitle = x
		c.YAxisTitle = y
	}
}

// WithTicks sets the desired tick count.
func WithTicks(n int) Option {
	return func(c *Config) { c.Ticks = n }
}

// WithPalette sets the series colors.
func WithPalette(colors ...string) Option {
	return func(c *Config) { c.Palette = colors }
}
