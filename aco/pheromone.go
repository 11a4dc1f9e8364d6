// Package aco - pheromone trail storage and the global update rule.
//
// The trail is the only shared mutable state of a run. It is read during the
// construction phase and rewritten exactly once per iteration, after all
// tours are known. Update computes the complete deposit matrix from the
// finished tours before touching the trail, so a failure never leaves a
// half-updated matrix behind.
package aco

import (
	"math"

	"github.com/katalvlaran/antsys/matrix"
)

// PheromoneTrail is a mutable n×n matrix of non-negative trail strengths.
type PheromoneTrail struct {
	t *matrix.Dense
	n int
}

// NewPheromoneTrail returns an n×n trail with every entry set to initial.
//
// Errors: ErrDimensionMismatch for n < 2; ErrInvalidOptions for a negative
// or non-finite initial value.
func NewPheromoneTrail(n int, initial float64) (*PheromoneTrail, error) {
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if initial < 0 || math.IsNaN(initial) || math.IsInf(initial, 0) {
		return nil, ErrInvalidOptions
	}
	t, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if err = t.Fill(initial); err != nil {
		return nil, err
	}

	return &PheromoneTrail{t: t, n: n}, nil
}

// Size returns n.
func (p *PheromoneTrail) Size() int { return p.n }

// Value returns trail(i, j) or ErrStartOutOfRange for invalid indices.
// Complexity: O(1).
func (p *PheromoneTrail) Value(i, j int) (float64, error) {
	v, err := p.t.At(i, j)
	if err != nil {
		return 0, ErrStartOutOfRange
	}
	return v, nil
}

// Snapshot returns a deep copy of the current trail.
func (p *PheromoneTrail) Snapshot() *matrix.Dense {
	return p.t.Clone().(*matrix.Dense)
}

// Sum returns the total trail mass Σ trail(i, j).
// Complexity: O(n²).
func (p *PheromoneTrail) Sum() float64 {
	var sum float64
	for i := 0; i < p.n; i++ {
		row, _ := p.t.RawRow(i)
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// Update applies evaporation and deposit for one completed iteration:
//
//	trail(m,n) ← (1 − alpha)·trail(m,n) + Σ_{t: (m,n) ∈ t.EdgeSet} 1/distance(m,n)
//
// for every ordered pair (m, n), diagonal included.
//
// Implementation:
//   - Stage 1: validate alpha ∈ (0,1) and sizes.
//   - Stage 2: build the deposit matrix from all tours (pure; no trail writes).
//   - Stage 3: evaporation + deposit into a fresh matrix, swapped in at the end.
//
// Errors: ErrInvalidOptions (alpha), ErrDimensionMismatch (size),
// ErrInvalidTour (empty tour or self-edge), matrix.ErrNaNInf (overflow; the
// trail is left unchanged).
//
// Complexity: O(k·n + n²) for k tours.
func (p *PheromoneTrail) Update(dm *DistanceModel, tours []Tour, alpha float64) error {
	// Stage 1: arguments.
	if !(alpha > 0 && alpha < 1) {
		return ErrInvalidOptions
	}
	if matrix.ValidateSameShape(dm.d, p.t) != nil {
		return ErrDimensionMismatch
	}

	// Stage 2: deposits.
	deposit, err := depositMatrix(dm, tours)
	if err != nil {
		return err
	}

	// Stage 3: compute the next trail aside; swap only when every cell is finite.
	next, err := matrix.NewDense(p.n, p.n)
	if err != nil {
		return err
	}
	var (
		keep = 1 - alpha
		i, j int
		old  float64
		add  float64
	)
	for i = 0; i < p.n; i++ {
		for j = 0; j < p.n; j++ {
			old, _ = p.t.At(i, j)
			add, _ = deposit.At(i, j)
			if err = next.Set(i, j, keep*old+add); err != nil {
				return err
			}
		}
	}
	p.t = next

	return nil
}

// depositMatrix sums 1/distance(m,n) over every tour whose edge set holds (m,n).
func depositMatrix(dm *DistanceModel, tours []Tour) (*matrix.Dense, error) {
	n := dm.Size()
	deposit, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		d   float64
		cur float64
	)
	for _, t := range tours {
		if t.IsEmpty() {
			return nil, ErrInvalidTour
		}
		if len(t.path) != n+1 {
			return nil, ErrDimensionMismatch
		}
		for e := range t.EdgeSet() {
			if e.From == e.To {
				// diagonal distance is zero; depositing would divide by it
				return nil, ErrInvalidTour
			}
			if d, err = dm.Distance(e.From, e.To); err != nil {
				return nil, ErrInvalidTour
			}
			cur, _ = deposit.At(e.From, e.To)
			if err = deposit.Set(e.From, e.To, cur+1/d); err != nil {
				return nil, err
			}
		}
	}

	return deposit, nil
}
