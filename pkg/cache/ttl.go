package cache

import "time"

// Stage TTLs. Grids and solve results are fully determined by their keys, so
// they only expire to bound cache growth. Artifacts expire sooner because
// theme definitions can change between releases.
const (
	TTLGrid     = 30 * 24 * time.Hour
	TTLSolve    = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
