package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/matrix"
	"github.com/stretchr/testify/require"
)

func TestDistanceModel_Reference(t *testing.T) {
	dm := referenceModel(t)
	require.Equal(t, 5, dm.Size())

	d, err := dm.Distance(2, 3)
	require.NoError(t, err)
	require.Equal(t, 10.0, d)

	_, err = dm.Distance(5, 0)
	require.ErrorIs(t, err, aco.ErrStartOutOfRange)
}

func TestDistanceModel_Rejects(t *testing.T) {
	cases := []struct {
		name      string
		rows      [][]float64
		symmetric bool
		want      error
	}{
		{"single location", [][]float64{{0}}, false, aco.ErrDimensionMismatch},
		{"ragged", [][]float64{{0, 1}, {1}}, false, aco.ErrNonSquare},
		{"non-square", [][]float64{{0, 1, 2}, {1, 0, 2}}, false, aco.ErrNonSquare},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, false, aco.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {1, 0}}, false, aco.ErrNegativeDistance},
		{"zero off-diagonal", [][]float64{{0, 0, 1}, {1, 0, 1}, {1, 1, 0}}, false, aco.ErrZeroDistance},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, false, aco.ErrNonFinite},
		{"reciprocal overflows", [][]float64{{0, 5e-324}, {5e-324, 0}}, true, aco.ErrNonFinite},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, true, aco.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := aco.DistanceModelFromRows(tc.rows, tc.symmetric)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDistanceModel_AsymmetricAllowed(t *testing.T) {
	dm, err := aco.DistanceModelFromRows([][]float64{{0, 1}, {2, 0}}, false)
	require.NoError(t, err)
	d, _ := dm.Distance(1, 0)
	require.Equal(t, 2.0, d)
}

func TestDistanceModel_Immutable(t *testing.T) {
	src, err := matrix.NewDenseFromRows(referenceRows)
	require.NoError(t, err)
	dm, err := aco.NewDistanceModel(src, true)
	require.NoError(t, err)

	require.NoError(t, src.Set(0, 1, 42))
	d, _ := dm.Distance(0, 1)
	require.Equal(t, 5.0, d, "model must not alias the caller's matrix")

	cp := dm.Matrix()
	require.NoError(t, cp.Set(0, 1, 42))
	d, _ = dm.Distance(0, 1)
	require.Equal(t, 5.0, d, "Matrix must return a copy")

	_, err = aco.NewDistanceModel(nil, false)
	require.ErrorIs(t, err, aco.ErrDimensionMismatch)
}
