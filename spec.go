package chart

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidSpec reports a Spec whose datasets disagree with its categories.
	ErrInvalidSpec = errors.New("chart: invalid spec")

	// ErrUnknownType reports a chart type outside the supported set.
	ErrUnknownType = errors.New("chart: unknown chart type")
)

// Link is an optional hyperlink attached to a category.
type Link struct {
	URL    string `json:"url" yaml:"url"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// Dataset is one named series with one value per category.
type Dataset struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
}

// Spec is the canonical, normalized chart data.
//
// Every dataset holds exactly len(Categories) values; gaps in the source
// data are stored as 0. Links is either empty or aligned with Categories,
// with nil marking a category without a link.
type Spec struct {
	Categories []string  `json:"categories" yaml:"categories"`
	Datasets   []Dataset `json:"datasets" yaml:"datasets"`
	Links      []*Link   `json:"links,omitempty" yaml:"links,omitempty"`
}

// Validate checks the equal-length invariant.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	n := len(s.Categories)
	for i, ds := range s.Datasets {
		if len(ds.Values) != n {
			return fmt.Errorf("%w: dataset %d (%q) has %d values, want %d",
				ErrInvalidSpec, i, ds.Name, len(ds.Values), n)
		}
	}
	if len(s.Links) != 0 && len(s.Links) != n {
		return fmt.Errorf("%w: %d links for %d categories", ErrInvalidSpec, len(s.Links), n)
	}
	return nil
}

// Finite returns s with every NaN or infinite value replaced by 0, the
// same way unparseable cells are stored. s itself is returned when all of
// its values are already finite.
func (s *Spec) Finite() *Spec {
	if s == nil || s.allFinite() {
		return s
	}
	out := &Spec{
		Categories: s.Categories,
		Datasets:   make([]Dataset, len(s.Datasets)),
		Links:      s.Links,
	}
	for i, ds := range s.Datasets {
		values := make([]float64, len(ds.Values))
		for j, v := range ds.Values {
			if !finite(v) {
				v = 0
			}
			values[j] = v
		}
		out.Datasets[i] = Dataset{Name: ds.Name, Values: values}
	}
	return out
}

func (s *Spec) allFinite() bool {
	for _, ds := range s.Datasets {
		for _, v := range ds.Values {
			if !finite(v) {
				return false
			}
		}
	}
	return true
}

// Link returns the link for category i, or nil.
func (s *Spec) Link(i int) *Link {
	if i < 0 || i >= len(s.Links) {
		return nil
	}
	return s.Links[i]
}

// valueRange returns the observed min and max over all dataset values.
func (s *Spec) valueRange() (lo, hi float64) {
	first := true
	for _, ds := range s.Datasets {
		for _, v := range ds.Values {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}

// stackRange returns the range of per-category totals with negative values
// clamped to zero, matching how stacked geometry accumulates.
func (s *Spec) stackRange() (lo, hi float64) {
	for i := range s.Categories {
		total := 0.0
		for _, ds := range s.Datasets {
			total += max(ds.Values[i], 0)
		}
		hi = max(hi, total)
	}
	return 0, hi
}
