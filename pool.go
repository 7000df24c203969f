package imd1

import "runtime"

// Worker pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent conversions in batch mode.
	MaxPoolSize = 16
)

// ResolvePoolSize determines the number of concurrent conversions.
// Priority: explicit workers > GOMAXPROCS.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	return min(max(runtime.GOMAXPROCS(0), MinPoolSize), MaxPoolSize)
}
