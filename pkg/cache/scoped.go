package cache

// ScopedKeyer wraps a Keyer with a prefix so several datasets or users can
// share one backend without colliding.
//
// Example usage:
//
//	// Per-project keys on a shared Redis instance
//	k := NewScopedKeyer(NewDefaultKeyer(), "project:cortex:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ReportKey generates a prefixed report key.
func (k *ScopedKeyer) ReportKey(treeHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(treeHash, opts)
}

// TreeKey generates a prefixed derived-tree key.
func (k *ScopedKeyer) TreeKey(treeHash, op string) string {
	return k.prefix + k.inner.TreeKey(treeHash, op)
}
