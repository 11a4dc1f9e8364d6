// Package aco - distance model and its validation.
//
// The model is validated once, up front, so that construction never meets a
// degenerate entry: zero off-diagonal distances (division by zero in the
// desirability term), negative or non-finite values, or a non-zero diagonal.
package aco

import (
	"errors"
	"math"

	"github.com/katalvlaran/antsys/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// DistanceModel is an immutable n×n matrix of pairwise distances.
// The zero value is not usable; build one with NewDistanceModel.
type DistanceModel struct {
	d *matrix.Dense
	n int
}

// NewDistanceModel validates m and returns an immutable copy of it.
//
// Contract:
//   - m non-nil, square, n ≥ 2;
//   - |m[i,i]| ≤ symTol;
//   - m[i,j] finite and strictly positive for i ≠ j, with 1/m[i,j] finite;
//   - if symmetric: |m[i,j] − m[j,i]| ≤ symTol.
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrNonZeroDiagonal,
// ErrNonFinite, ErrNegativeDistance, ErrZeroDistance, ErrAsymmetry.
//
// Complexity: O(n²).
func NewDistanceModel(m matrix.Matrix, symmetric bool) (*DistanceModel, error) {
	n, err := validateDistMatrix(m, symmetric)
	if err != nil {
		return nil, err
	}

	// Copy into a private Dense; the caller keeps ownership of m.
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, ErrDimensionMismatch
			}
			if i == j {
				v = 0 // normalize diagonal noise within symTol
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return &DistanceModel{d: d, n: n}, nil
}

// DistanceModelFromRows is a convenience wrapper over NewDistanceModel for
// literal [][]float64 instances. Ragged rows yield ErrNonSquare.
func DistanceModelFromRows(rows [][]float64, symmetric bool) (*DistanceModel, error) {
	m, err := matrix.NewDenseFromRows(rows)
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return nil, ErrNonSquare
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return nil, ErrDimensionMismatch
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, ErrNonFinite
	case err != nil:
		return nil, err
	}

	return NewDistanceModel(m, symmetric)
}

// Size returns n, the number of locations.
func (dm *DistanceModel) Size() int { return dm.n }

// Distance returns distance(i, j) or ErrStartOutOfRange for invalid indices.
// Complexity: O(1).
func (dm *DistanceModel) Distance(i, j int) (float64, error) {
	v, err := dm.d.At(i, j)
	if err != nil {
		return 0, ErrStartOutOfRange
	}

	return v, nil
}

// Matrix returns a deep copy of the underlying distances.
func (dm *DistanceModel) Matrix() *matrix.Dense {
	return dm.d.Clone().(*matrix.Dense)
}

// validateDistMatrix performs the full validation described on NewDistanceModel
// and returns n on success.
//
// Complexity: O(n²).
func validateDistMatrix(m matrix.Matrix, symmetric bool) (int, error) {
	// Stage 1: shape.
	if m == nil {
		return 0, ErrDimensionMismatch
	}
	if err := matrix.ValidateSquare(m); err != nil || m.Rows() <= 0 {
		return 0, ErrNonSquare
	}
	n := m.Rows()
	if n < 2 {
		// A single location has no closed tour without a self-edge.
		return 0, ErrDimensionMismatch
	}

	// Stage 2: per-entry checks.
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNonFinite
			}
			if i == j {
				if math.Abs(v) > symTol {
					return 0, ErrNonZeroDiagonal
				}
				continue
			}
			if v < 0 {
				return 0, ErrNegativeDistance
			}
			if v == 0 {
				return 0, ErrZeroDistance
			}
			if math.IsInf(1/v, 0) {
				// subnormal distance: its deposit 1/v would overflow
				return 0, ErrNonFinite
			}
		}
	}

	// Stage 3: symmetry, if required.
	if symmetric {
		if err = matrix.ValidateSymmetric(m, symTol); err != nil {
			if errors.Is(err, matrix.ErrAsymmetry) {
				return 0, ErrAsymmetry
			}
			return 0, err
		}
	}

	return n, nil
}
