package rng

import (
	"fmt"

	"go.uber.org/zap"
)

// Shuffle performs a Fisher-Yates permutation of n elements, calling swap to
// exchange positions i and j. Every permutation is equally likely when src is
// uniform.
//
// Precondition: n >= 0 (panics otherwise); src must be non-nil.
// Postcondition: swap is called exactly max(n-1, 0) times.
func Shuffle(src Source, n int, swap func(i, j int)) {
	if n < 0 {
		panic(fmt.Sprintf("rng: Shuffle: n must be >= 0, got %d", n))
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// LoggedSource wraps a Source and logger so every draw is recorded at debug level.
type LoggedSource struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedSource creates a LoggedSource that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedSource(src Source, logger *zap.Logger) *LoggedSource {
	return &LoggedSource{src: src, logger: logger}
}

// Intn draws from the wrapped Source and logs the bound and result.
//
// Precondition: n > 0.
func (s *LoggedSource) Intn(n int) int {
	v := s.src.Intn(n)
	s.logger.Debug("rng draw", zap.Int("n", n), zap.Int("value", v))
	return v
}
