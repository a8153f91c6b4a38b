package cache

// ReportKeyOpts holds every option that changes an analysis report.
// Two runs with equal options over the same tree share a cache entry.
type ReportKeyOpts struct {
	Axes      string    `json:"axes"`
	Point     []float64 `json:"point,omitempty"`
	Weights   []float64 `json:"weights,omitempty"`
	Normalize bool      `json:"normalize,omitempty"`
	WithTime  bool      `json:"with_time,omitempty"`
	ZeroTime  float64   `json:"zero_time,omitempty"`
	Time      float64   `json:"time,omitempty"`
	Plane     string    `json:"plane,omitempty"`
	Component int       `json:"component,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ReportKey returns the key of the analysis report for the tree whose
	// content hash is treeHash.
	ReportKey(treeHash string, opts ReportKeyOpts) string
	// TreeKey returns the key of a derived tree (such as a simplified one)
	// for the tree whose content hash is treeHash.
	TreeKey(treeHash, op string) string
}

// DefaultKeyer produces keys of the form "report:<sha256>" and "tree:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ReportKey implements [Keyer].
func (DefaultKeyer) ReportKey(treeHash string, opts ReportKeyOpts) string {
	return hashKey("report", treeHash, opts)
}

// TreeKey implements [Keyer].
func (DefaultKeyer) TreeKey(treeHash, op string) string {
	return hashKey("tree", treeHash, op)
}
