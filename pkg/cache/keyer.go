package cache

// GridKeyOpts identify a generated grid: the full set of inputs that
// determine its bytes.
type GridKeyOpts struct {
	Algorithm string
	Width     int
	Height    int
	Seed      uint64
}

// SolveKeyOpts identify a solve result on a content-addressed grid.
type SolveKeyOpts struct {
	Algorithm string
	StartX    int
	StartY    int
	EndX      int
	EndY      int
}

// ArtifactKeyOpts identify a rendered artifact of a grid (and optionally its
// solution overlay).
type ArtifactKeyOpts struct {
	Format      string
	Theme       string
	ShowVisited bool
	SolveKey    string // empty when rendering the bare maze
}

// Keyer derives cache keys for the pipeline stages. Implementations must be
// deterministic: equal options yield equal keys.
type Keyer interface {
	GridKey(opts GridKeyOpts) string
	SolveKey(gridHash string, opts SolveKeyOpts) string
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the option structs under stage-specific prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// GridKey returns the key for a generated grid.
func (DefaultKeyer) GridKey(opts GridKeyOpts) string {
	return hashKey("grid", opts)
}

// SolveKey returns the key for a solve result.
func (DefaultKeyer) SolveKey(gridHash string, opts SolveKeyOpts) string {
	return hashKey("solve", gridHash, opts)
}

// ArtifactKey returns the key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gridHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so separate server instances or
// tenants get isolated namespaces in a shared Redis.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
// A nil inner defaults to [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// GridKey returns the prefixed grid key.
func (k *ScopedKeyer) GridKey(opts GridKeyOpts) string {
	return k.prefix + k.inner.GridKey(opts)
}

// SolveKey returns the prefixed solve key.
func (k *ScopedKeyer) SolveKey(gridHash string, opts SolveKeyOpts) string {
	return k.prefix + k.inner.SolveKey(gridHash, opts)
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(gridHash, opts)
}
