// Package aco - tour construction for a single ant.
//
// State-transition rule: from the current location r, every remaining
// location n is scored with term(r,n) = trail(r,n)·(1/distance(r,n))^β and the
// ant moves to the candidate with the highest term/Σterm. Candidates are
// scanned in ascending index order and replaced only on a strictly greater
// probability, so exact ties resolve to the lowest location index.
package aco

import "math"

// ConstructTour builds one closed tour starting at start.
//
// Contract:
//   - dm and trail have the same size n;
//   - 0 ≤ start < n;
//   - trail is only read.
//
// Errors: ErrStartOutOfRange, ErrDimensionMismatch, ErrInvalidOptions (beta).
//
// Complexity: O(n²) time, O(n) space.
func ConstructTour(dm *DistanceModel, trail *PheromoneTrail, start int, beta float64) (Tour, error) {
	// Stage 1: arguments.
	n := dm.Size()
	if trail.Size() != n {
		return Tour{}, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return Tour{}, ErrStartOutOfRange
	}
	if !(beta > 0) || math.IsInf(beta, 0) {
		return Tour{}, ErrInvalidOptions
	}

	// Stage 2: agent state. remaining stays sorted ascending.
	path := make([]int, 1, n+1)
	path[0] = start
	remaining := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			remaining = append(remaining, v)
		}
	}
	terms := make([]float64, n-1)
	dists := make([]float64, n-1)

	// Stage 3: greedy-probabilistic moves until every location is visited.
	var (
		length float64
		err    error
	)
	for len(remaining) > 0 {
		r := path[len(path)-1]

		var denominator float64
		for k, cand := range remaining {
			if terms[k], dists[k], err = desirability(dm, trail, r, cand, beta); err != nil {
				return Tour{}, err
			}
			denominator += terms[k]
		}

		best := pickNext(terms[:len(remaining)], denominator)
		next := remaining[best]

		length += dists[best]
		path = append(path, next)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	// Stage 4: close the cycle.
	d, err := dm.Distance(path[len(path)-1], start)
	if err != nil {
		return Tour{}, err
	}
	length += d
	path = append(path, start)

	return Tour{path: path, length: length}, nil
}

// desirability returns trail(r,n)·(1/distance(r,n))^beta and distance(r,n).
func desirability(dm *DistanceModel, trail *PheromoneTrail, r, n int, beta float64) (float64, float64, error) {
	d, err := dm.Distance(r, n)
	if err != nil {
		return 0, 0, err
	}
	tau, err := trail.Value(r, n)
	if err != nil {
		return 0, 0, err
	}
	return tau * math.Pow(1/d, beta), d, nil
}

// pickNext returns the index of the first maximal term/denominator.
// A non-positive or NaN denominator (every term underflowed to zero) selects
// index 0, the lowest remaining location. An overflowed denominator falls
// back to comparing raw terms, which orders candidates identically.
func pickNext(terms []float64, denominator float64) int {
	if !(denominator > 0) {
		return 0
	}
	if math.IsInf(denominator, 1) {
		denominator = 1
	}
	best, bestP := 0, -1.0
	for k, term := range terms {
		if p := term / denominator; p > bestP {
			best, bestP = k, p
		}
	}
	return best
}
