package cli

import (
	"context"

	"github.com/spf13/cobra"

	tmdio "github.com/matzehuels/tmd/pkg/io"
	"github.com/matzehuels/tmd/pkg/pipeline"
	"github.com/matzehuels/tmd/pkg/tree"
)

// analysisFlags holds flags shared by the analysis commands.
type analysisFlags struct {
	axes      string
	point     []float64
	weights   []float64
	normalize bool
	withTime  bool
	zeroTime  float64
	time      float64
	plane     string
	component int
	noCache   bool
	refresh   bool
}

// register adds the distance flags to cmd.
func (f *analysisFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.axes, "axes", pipeline.DefaultAxes, "axes for radial distances (any of x, y, z)")
	flags.Float64SliceVar(&f.point, "point", nil, "reference point, one value per axis (default: root)")
	flags.Float64SliceVar(&f.weights, "weights", nil, "per-axis weights for weighted radial distances")
	flags.BoolVar(&f.normalize, "normalize", false, "scale weights to unit length")
	flags.BoolVar(&f.withTime, "with-time", false, "add space-time radial distances")
	flags.Float64Var(&f.zeroTime, "zero-time", 0, "time coordinate of the reference point")
	flags.Float64Var(&f.time, "time", pipeline.DefaultTime, "time coordinate of every tree point")
	f.registerPlane(cmd)
	f.registerCache(cmd)
}

// registerPlane adds the orientation flags to cmd.
func (f *analysisFlags) registerPlane(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.plane, "plane", pipeline.DefaultPlane, "plane for principal-axis queries")
	cmd.Flags().IntVar(&f.component, "component", pipeline.DefaultComponent, "principal component (0 or 1)")
}

// registerCache adds the cache flags to cmd.
func (f *analysisFlags) registerCache(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute and overwrite cached results")
}

// options merges pipeline defaults, config values and explicitly set flags,
// in increasing order of precedence.
func (c *CLI) options(cmd *cobra.Command, f *analysisFlags) pipeline.Options {
	opts := pipeline.Options{Logger: c.Logger, Refresh: f.refresh}
	c.config.apply(&opts)

	changed := cmd.Flags().Changed
	if changed("axes") {
		opts.Axes = f.axes
	}
	if changed("point") {
		opts.Point = f.point
	}
	if changed("weights") {
		opts.Weights = f.weights
	}
	if changed("normalize") {
		opts.Normalize = f.normalize
	}
	if changed("zero-time") {
		opts.ZeroTime = f.zeroTime
	}
	if changed("time") {
		opts.Time = f.time
	}
	if changed("plane") {
		opts.Plane = f.plane
	}
	if changed("component") {
		opts.Component = f.component
	}
	opts.WithTime = f.withTime
	return opts
}

// loadTree reads a JSON tree file and logs its size.
func loadTree(ctx context.Context, path string) (*tree.Tree, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	t, err := tmdio.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded tree", "path", path, "points", t.Size())
	prog.done("Loaded " + path)
	return t, nil
}
