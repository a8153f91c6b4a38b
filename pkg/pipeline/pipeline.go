// Package pipeline runs the complete morphometric analysis of a point tree.
//
// It ties the tree queries together behind one set of [Options] and produces
// a JSON-serializable [Report]. A [Runner] adds caching keyed by the tree's
// content hash and the options, so repeated runs over the same file are
// served from the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	report, hit, err := runner.Analyze(ctx, t, pipeline.Options{Axes: "xy"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.TotalLength, hit)
//
// Run individual stages:
//
//	// Tree reduction only
//	simplified, err := runner.Simplify(ctx, t, opts)
//
//	// Orientation only
//	dir, err := runner.PrincipalAxis(ctx, t, opts)
package pipeline

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tmd/pkg/cache"
	"github.com/matzehuels/tmd/pkg/errors"
	"github.com/matzehuels/tmd/pkg/tree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultAxes selects all three coordinates for radial distances.
	DefaultAxes = "xyz"

	// DefaultPlane is the plane used for principal-axis queries.
	DefaultPlane = "xy"

	// DefaultComponent selects the direction of largest variance.
	DefaultComponent = 0

	// DefaultTime is the time coordinate given to tree points in space-time
	// radial distances when neither time coordinate is set.
	DefaultTime = 1.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one analysis run.
// This struct supports JSON serialization.
type Options struct {
	// Radial distance options
	Axes  string    `json:"axes,omitempty"`  // Axis selection such as "xyz" or "zx"
	Point []float64 `json:"point,omitempty"` // Reference point, one value per axis; nil means the root

	// Weighted radial distances are computed only when Weights is set.
	Weights   []float64 `json:"weights,omitempty"`
	Normalize bool      `json:"normalize,omitempty"`

	// Space-time radial distances are computed only when WithTime is set.
	// Time defaults to DefaultTime when both time coordinates are zero.
	WithTime bool    `json:"with_time,omitempty"`
	ZeroTime float64 `json:"zero_time,omitempty"`
	Time     float64 `json:"time,omitempty"`

	// Orientation options
	Plane     string `json:"plane,omitempty"`
	Component int    `json:"component,omitempty"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	axes      []tree.Axis
	plane     tree.Plane
	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Axes == "" {
		o.Axes = DefaultAxes
	}
	if o.Plane == "" {
		o.Plane = DefaultPlane
	}
	if o.WithTime && o.Time == 0 && o.ZeroTime == 0 {
		o.Time = DefaultTime
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	axes, err := tree.ParseAxes(o.Axes)
	if err != nil {
		return err
	}
	plane, err := tree.ParsePlane(o.Plane)
	if err != nil {
		return err
	}
	if o.Point != nil && len(o.Point) != len(axes) {
		return errors.New(errors.ErrCodeInvalidInput, "reference point has %d coordinates for axes %q", len(o.Point), o.Axes)
	}
	if o.Weights != nil {
		if len(o.Weights) != len(axes) {
			return errors.New(errors.ErrCodeInvalidInput, "%d weights for axes %q", len(o.Weights), o.Axes)
		}
		if o.Normalize && !slices.ContainsFunc(o.Weights, func(w float64) bool { return w != 0 }) {
			return errors.New(errors.ErrCodeInvalidInput, "cannot normalize all-zero weights")
		}
	}
	if o.Component < 0 || o.Component > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "component %d out of range [0, 2)", o.Component)
	}

	o.axes = axes
	o.plane = plane
	o.validated = true
	return nil
}

// ReportKeyOpts returns cache key options for the analysis report.
func (o *Options) ReportKeyOpts() cache.ReportKeyOpts {
	return cache.ReportKeyOpts{
		Axes:      o.Axes,
		Point:     o.Point,
		Weights:   o.Weights,
		Normalize: o.Normalize,
		WithTime:  o.WithTime,
		ZeroTime:  o.ZeroTime,
		Time:      o.Time,
		Plane:     o.Plane,
		Component: o.Component,
	}
}
