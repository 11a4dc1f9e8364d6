// Package aco - start-location policies.
//
// RandomStarts reproduces the "recycle starts once exhausted" heuristic: draw
// uniformly from all locations and redraw on a repeat, unless every location
// has already been used once this iteration, in which case any draw is kept.
// The rejection loop is bounded; after maxStartRedraws misses the start is
// drawn uniformly from the unused locations directly, which has the same
// distribution as continued rejection.
package aco

import "math/rand"

// StartSelector chooses the start location of each ant for one iteration.
type StartSelector interface {
	// Select returns count start locations in [0, n).
	Select(n, count int) ([]int, error)
}

// RandomStarts draws starts from a seeded RNG. Not safe for concurrent use.
type RandomStarts struct {
	rng *rand.Rand
}

var _ StartSelector = (*RandomStarts)(nil)

// NewRandomStarts returns a RandomStarts seeded per rngFromSeed (0 ⇒ default seed).
func NewRandomStarts(seed int64) *RandomStarts {
	return &RandomStarts{rng: rngFromSeed(seed)}
}

// maxStartRedraws bounds the rejection loop for a single start.
func maxStartRedraws(n int) int { return 4 * n }

// Select implements StartSelector.
//
// Complexity: O(count·n) worst case.
func (s *RandomStarts) Select(n, count int) ([]int, error) {
	if n < 1 || count < 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		out       = make([]int, 0, count)
		used      = make([]bool, n)
		usedCount int
	)
	for k := 0; k < count; k++ {
		if usedCount == n {
			// every location taken once: repeats are allowed
			out = append(out, s.rng.Intn(n))
			continue
		}

		start := -1
		for attempt := 0; attempt < maxStartRedraws(n); attempt++ {
			if c := s.rng.Intn(n); !used[c] {
				start = c
				break
			}
		}
		if start < 0 {
			start = s.pickUnused(used, n-usedCount)
		}

		used[start] = true
		usedCount++
		out = append(out, start)
	}

	return out, nil
}

// pickUnused returns a uniformly chosen index among the free entries of used.
func (s *RandomStarts) pickUnused(used []bool, free int) int {
	target := s.rng.Intn(free)
	for v, taken := range used {
		if taken {
			continue
		}
		if target == 0 {
			return v
		}
		target--
	}
	return -1 // unreachable while free matches the count of false entries
}

// FixedStarts is an injected start sequence, cycled when count exceeds its
// length. It makes runs fully deterministic.
type FixedStarts []int

var _ StartSelector = FixedStarts(nil)

// Select implements StartSelector.
func (f FixedStarts) Select(n, count int) ([]int, error) {
	if len(f) == 0 && count > 0 {
		return nil, ErrDimensionMismatch
	}
	out := make([]int, count)
	for k := range out {
		v := f[k%len(f)]
		if v < 0 || v >= n {
			return nil, ErrStartOutOfRange
		}
		out[k] = v
	}
	return out, nil
}
