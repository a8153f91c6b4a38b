package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/matzehuels/tmd/pkg/buildinfo"
	"github.com/matzehuels/tmd/pkg/tree"
)

// Report is the result of one analysis run.
type Report struct {
	ID        string    `json:"id"`
	TreeHash  string    `json:"tree_hash"`
	CreatedAt time.Time `json:"created_at"`
	Generator string    `json:"generator"`
	Options   Options   `json:"options"`

	Size        int         `json:"size"`
	Type        int         `json:"type"`
	BoundingBox BoundingBox `json:"bounding_box"`

	Terminations    int `json:"terminations"`
	Bifurcations    int `json:"bifurcations"`
	Multifurcations int `json:"multifurcations"`

	Sections []Section `json:"sections"`

	SegmentLengths  []float64 `json:"segment_lengths"`
	PathDistances   []float64 `json:"path_distances"`
	RadialDistances []float64 `json:"radial_distances"`
	BranchOrders    []int     `json:"branch_orders"`

	WeightedRadialDistances []float64 `json:"weighted_radial_distances,omitempty"`
	RadialDistancesTime     []float64 `json:"radial_distances_time,omitempty"`

	// PrincipalAxis is nil for trees with a single point.
	PrincipalAxis *[2]float64 `json:"principal_axis,omitempty"`

	Summary Summary `json:"summary"`
}

// BoundingBox is the axis-aligned extent of a tree as [x, y, z] corners.
type BoundingBox struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// Section describes one section of the decomposition.
type Section struct {
	Begin       int     `json:"begin"`        // Boundary the section grows out of
	First       int     `json:"first"`        // First point of the section
	End         int     `json:"end"`          // Last point of the section
	Length      float64 `json:"length"`       // Summed segment lengths
	BranchOrder int     `json:"branch_order"` // Branch order of the last point
}

// Summary holds scalar statistics over the per-point results.
type Summary struct {
	TotalLength         float64 `json:"total_length"`
	MaxPathDistance     float64 `json:"max_path_distance"`
	MaxRadialDistance   float64 `json:"max_radial_distance"`
	MaxBranchOrder      int     `json:"max_branch_order"`
	MeanSegmentLength   float64 `json:"mean_segment_length"`
	MedianSegmentLength float64 `json:"median_segment_length"`
	MeanSectionLength   float64 `json:"mean_section_length"`
	SimplifiedSize      int     `json:"simplified_size"`
}

// Analyze computes a report for t. opts must have been validated.
// PCA failures are not fatal: the principal axis is left out of the report.
func Analyze(t *tree.Tree, opts Options, finder tree.PrincipalAxisFinder) *Report {
	box := t.BoundingBox()
	r := &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Generator: buildinfo.Short(),
		Options:   opts,
		Size:      t.Size(),
		Type:      t.Type(),
		BoundingBox: BoundingBox{
			Min: [3]float64{box.Min.X, box.Min.Y, box.Min.Z},
			Max: [3]float64{box.Max.X, box.Max.Y, box.Max.Z},
		},
		Terminations:    len(t.Terminations()),
		Bifurcations:    len(t.Bifurcations()),
		Multifurcations: len(t.Multifurcations()),
		SegmentLengths:  t.SegmentLengths(),
		PathDistances:   t.PathDistances(),
		RadialDistances: t.RadialDistances(opts.Point, opts.axes...),
		BranchOrders:    t.SectionBranchOrders(),
	}
	if opts.Weights != nil {
		r.WeightedRadialDistances = t.WeightedRadialDistances(opts.Point, opts.Weights, opts.Normalize, opts.axes...)
	}
	if opts.WithTime {
		r.RadialDistancesTime = t.RadialDistancesTime(opts.Point, opts.ZeroTime, opts.Time, opts.axes...)
	}
	if t.Size() >= 2 && finder != nil {
		if dir, err := t.PCA(finder, opts.plane, opts.Component); err == nil {
			r.PrincipalAxis = &dir
		} else {
			opts.Logger.Warn("principal axis unavailable", "error", err)
		}
	}

	lengths := t.SectionLengths()
	beg, end := t.Sections()
	first, _ := t.SectionsOnlyPoints()
	r.Sections = make([]Section, len(end))
	sectionLengths := make([]float64, len(end))
	for i, e := range end {
		r.Sections[i] = Section{
			Begin:       beg[i],
			First:       first[i],
			End:         e,
			Length:      lengths[e],
			BranchOrder: r.BranchOrders[e],
		}
		sectionLengths[i] = lengths[e]
	}

	r.Summary = summarize(r, sectionLengths)
	r.Summary.SimplifiedSize = len(end) + 1
	return r
}

// summarize computes the scalar statistics. Empty inputs (single-point trees)
// yield zeros.
func summarize(r *Report, sectionLengths []float64) Summary {
	return Summary{
		TotalLength:         statOrZero(stats.Sum, r.SegmentLengths),
		MaxPathDistance:     statOrZero(stats.Max, r.PathDistances),
		MaxRadialDistance:   statOrZero(stats.Max, r.RadialDistances),
		MaxBranchOrder:      int(statOrZero(stats.Max, stats.LoadRawData(r.BranchOrders))),
		MeanSegmentLength:   statOrZero(stats.Mean, r.SegmentLengths),
		MedianSegmentLength: statOrZero(stats.Median, r.SegmentLengths),
		MeanSectionLength:   statOrZero(stats.Mean, sectionLengths),
	}
}

func statOrZero(f func(stats.Float64Data) (float64, error), data stats.Float64Data) float64 {
	v, err := f(data)
	if err != nil {
		return 0
	}
	return v
}
