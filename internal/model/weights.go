package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// weightTolerance is the floating-point slack allowed when checking that a
// weight profile sums to 1.0.
const weightTolerance = 1e-6

// Weights is a profile for aggregating the five component scores.
// A valid profile has non-negative entries summing to 1.0.
type Weights struct {
	Skill        float64 `json:"skill" yaml:"skill" mapstructure:"skill"`
	Location     float64 `json:"location" yaml:"location" mapstructure:"location"`
	Budget       float64 `json:"budget" yaml:"budget" mapstructure:"budget"`
	Availability float64 `json:"availability" yaml:"availability" mapstructure:"availability"`
	Quality      float64 `json:"quality" yaml:"quality" mapstructure:"quality"`
}

// DefaultWeights returns the stock profile, which favors skill match and
// availability over budget and quality.
func DefaultWeights() Weights {
	return Weights{
		Skill:        0.30,
		Location:     0.20,
		Budget:       0.15,
		Availability: 0.20,
		Quality:      0.15,
	}
}

// Sum returns the total of all component weights.
func (w Weights) Sum() float64 {
	return w.Skill + w.Location + w.Budget + w.Availability + w.Quality
}

// Validate checks that the profile is usable: no negative weights, total 1.0
// within floating-point tolerance.
func (w Weights) Validate() error {
	var errs []string

	entries := []struct {
		name  string
		value float64
	}{
		{"skill", w.Skill},
		{"location", w.Location},
		{"budget", w.Budget},
		{"availability", w.Availability},
		{"quality", w.Quality},
	}
	for _, e := range entries {
		if e.value < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", e.name))
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		errs = append(errs, fmt.Sprintf("weights must sum to 1.0, got %g", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("weights: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Apply computes the weighted aggregate of the component scores, clamped to
// [0,1].
func (w Weights) Apply(c ComponentScores) float64 {
	total := w.Skill*c.Skill +
		w.Location*c.Location +
		w.Budget*c.Budget +
		w.Availability*c.Availability +
		w.Quality*c.Quality
	return math.Min(1, math.Max(0, total))
}
