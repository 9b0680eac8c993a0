package chart

import (
	"fmt"
	"strings"
	"time"
)

// Type identifies a chart type.
type Type string

// Supported chart types.
const (
	TypeLine          Type = "line"
	TypeColumn        Type = "column"
	TypeStackedColumn Type = "stackedcolumn"
	TypeBar           Type = "bar"
	TypeStackedBar    Type = "stackedbar"
	TypePie           Type = "pie"
	TypeDonut         Type = "donut"
	TypeRadial        Type = "radial"
)

// ParseType converts a case-insensitive name to a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// Valid reports whether t is one of the supported chart types.
func (t Type) Valid() bool {
	switch t {
	case TypeLine, TypeColumn, TypeStackedColumn, TypeBar, TypeStackedBar,
		TypePie, TypeDonut, TypeRadial:
		return true
	}
	return false
}

// Polar reports whether t is drawn around a center point.
func (t Type) Polar() bool {
	return t == TypePie || t == TypeDonut || t == TypeRadial
}

// Horizontal reports whether categories run down the vertical axis.
func (t Type) Horizontal() bool {
	return t == TypeBar || t == TypeStackedBar
}

// Stacked reports whether series accumulate per category.
func (t Type) Stacked() bool {
	return t == TypeStackedColumn || t == TypeStackedBar
}

// LegendPosition places the (external) legend.
type LegendPosition string

// Legend positions.
const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
)

// Config holds every rendering option of a chart instance.
// The zero value is not useful; start from DefaultConfig or NewConfig.
type Config struct {
	Type Type `yaml:"type"`

	Animated       bool `yaml:"animated"`
	Tooltips       bool `yaml:"tooltips"`
	Legend         bool `yaml:"legend"`
	GridHorizontal bool `yaml:"gridHorizontal"`
	GridVertical   bool `yaml:"gridVertical"`
	Smooth         bool `yaml:"smooth"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	BarRadius   float64 `yaml:"barRadius"`
	StackGap    float64 `yaml:"stackGap"`
	PolarGap    float64 `yaml:"polarGap"`
	PolarRadius float64 `yaml:"polarRadius"`
	RingWidth   float64 `yaml:"ringWidth"`
	RadialInner float64 `yaml:"radialInner"`
	Ticks       int     `yaml:"ticks"`

	Duration time.Duration `yaml:"duration"`
	Stagger  time.Duration `yaml:"stagger"`

	Title          string         `yaml:"title"`
	XAxisTitle     string         `yaml:"xAxisTitle"`
	YAxisTitle     string         `yaml:"yAxisTitle"`
	LegendPosition LegendPosition `yaml:"legendPosition"`
	LegendSwatch   string         `yaml:"legendSwatch"`
	Palette        []string       `yaml:"palette"`
	Locale         string         `yaml:"locale"`
}

// DefaultPalette colors series (cartesian) or categories (polar) in order.
var DefaultPalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		Type:           TypeColumn,
		Tooltips:       true,
		Legend:         true,
		GridHorizontal: true,
		Width:          600,
		Height:         400,
		RingWidth:      60,
		RadialInner:    0.25,
		Ticks:          5,
		Duration:       time.Second,
		LegendPosition: LegendBottom,
		LegendSwatch:   "square",
		Locale:         "en",
	}
}

// Normalize fills zero-valued numeric options with defaults and clamps
// negative ones, so builders can rely on sane values. It is idempotent.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.Type == "" {
		c.Type = def.Type
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Ticks <= 0 {
		c.Ticks = def.Ticks
	}
	if c.RingWidth <= 0 {
		c.RingWidth = def.RingWidth
	}
	if c.RadialInner <= 0 || c.RadialInner >= 1 {
		c.RadialInner = def.RadialInner
	}
	if c.Duration <= 0 {
		c.Duration = def.Duration
	}
	if c.Stagger < 0 {
		c.Stagger = 0
	}
	if c.LegendPosition == "" {
		c.LegendPosition = def.LegendPosition
	}
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	c.BarRadius = max(c.BarRadius, 0)
	c.StackGap = max(c.StackGap, 0)
	c.PolarGap = max(c.PolarGap, 0)
	c.PolarRadius = max(c.PolarRadius, 0)
	return c
}

// StaggerFor returns the start offset between consecutive primitives when
// count primitives animate independently.
func (c *Config) StaggerFor(count int) time.Duration {
	if c.Stagger > 0 {
		return c.Stagger
	}
	if count <= 0 {
		return 0
	}
	return c.Duration / time.Duration(count)
}

// Color returns the palette color for index i.
func (c *Config) Color(i int) string {
	p := c.Palette
	if len(p) == 0 {
		p = DefaultPalette
	}
	return p[i%len(p)]
}
