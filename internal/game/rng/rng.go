// Package rng provides the injectable randomness abstraction used to shuffle
// shotgun magazines and deal items.
package rng

// Source is the randomness provider for shuffles and item draws.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
