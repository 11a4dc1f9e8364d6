package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/matrix"
	"github.com/stretchr/testify/require"
)

const alphaRef = 0.71

func trailAt(t *testing.T, p *aco.PheromoneTrail, i, j int) float64 {
	t.Helper()
	v, err := p.Value(i, j)
	require.NoError(t, err)
	return v
}

func TestPheromoneTrail_New(t *testing.T) {
	p := onesTrail(t, 3)
	require.Equal(t, 3, p.Size())
	require.Equal(t, 9.0, p.Sum())

	_, err := aco.NewPheromoneTrail(1, 1)
	require.ErrorIs(t, err, aco.ErrDimensionMismatch)
	_, err = aco.NewPheromoneTrail(3, -1)
	require.ErrorIs(t, err, aco.ErrInvalidOptions)
	_, err = aco.NewPheromoneTrail(3, math.Inf(1))
	require.ErrorIs(t, err, aco.ErrInvalidOptions)

	_, err = p.Value(3, 0)
	require.ErrorIs(t, err, aco.ErrStartOutOfRange)
}

func TestPheromoneTrail_EvaporationOnly(t *testing.T) {
	dm := referenceModel(t)
	p := onesTrail(t, 5)
	require.NoError(t, p.Update(dm, nil, alphaRef))

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			require.InDelta(t, 1-alphaRef, trailAt(t, p, i, j), 1e-12)
		}
	}
}

func TestPheromoneTrail_DepositDirected(t *testing.T) {
	dm := referenceModel(t)
	p := onesTrail(t, 5)
	tour, err := aco.NewTour(dm, []int{0, 4, 1, 3, 2, 0})
	require.NoError(t, err)
	before := p.Snapshot()

	require.NoError(t, p.Update(dm, []aco.Tour{tour, tour}, alphaRef))

	keep := 1 - alphaRef
	used := tour.EdgeSet()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			old, _ := before.At(i, j)
			want := keep * old
			if _, ok := used[aco.Edge{From: i, To: j}]; ok {
				d, _ := dm.Distance(i, j)
				want += 2 / d
			}
			require.InDelta(t, want, trailAt(t, p, i, j), 1e-12, "(%d,%d)", i, j)
		}
	}
	// (0,4) is used, its reverse is not.
	require.InDelta(t, keep+2.0, trailAt(t, p, 0, 4), 1e-12)
	require.InDelta(t, keep, trailAt(t, p, 4, 0), 1e-12)
}

func TestPheromoneTrail_NonNegativeOverManyUpdates(t *testing.T) {
	dm := referenceModel(t)
	p := onesTrail(t, 5)
	for k := 0; k < 200; k++ {
		tour, err := aco.ConstructTour(dm, p, k%5, 2)
		require.NoError(t, err)
		require.NoError(t, p.Update(dm, []aco.Tour{tour}, 0.5))
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v := trailAt(t, p, i, j)
			require.GreaterOrEqual(t, v, 0.0)
			require.False(t, math.IsNaN(v))
		}
	}
}

func TestPheromoneTrail_UpdateErrorsLeaveTrailUntouched(t *testing.T) {
	dm := referenceModel(t)
	p := onesTrail(t, 5)
	good, err := aco.NewTour(dm, []int{0, 4, 1, 3, 2, 0})
	require.NoError(t, err)

	for _, alpha := range []float64{0, 1, -0.1, math.NaN()} {
		require.ErrorIs(t, p.Update(dm, []aco.Tour{good}, alpha), aco.ErrInvalidOptions)
	}
	require.ErrorIs(t, p.Update(dm, []aco.Tour{good, aco.EmptyTour()}, alphaRef), aco.ErrInvalidTour)

	small, err := aco.DistanceModelFromRows(ring(4), true)
	require.NoError(t, err)
	require.ErrorIs(t, p.Update(small, nil, alphaRef), aco.ErrDimensionMismatch)

	require.Equal(t, 25.0, p.Sum(), "failed updates must not mutate the trail")
}

func TestPheromoneTrail_OverflowLeavesTrailUntouched(t *testing.T) {
	// 1/1e-308 is finite, but added to a near-max trail it overflows.
	dm, err := aco.DistanceModelFromRows([][]float64{
		{0, 1e-308, 1},
		{1e-308, 0, 1},
		{1, 1, 0},
	}, true)
	require.NoError(t, err)
	p, err := aco.NewPheromoneTrail(3, math.MaxFloat64)
	require.NoError(t, err)
	tour, err := aco.NewTour(dm, []int{0, 1, 2, 0})
	require.NoError(t, err)

	err = p.Update(dm, []aco.Tour{tour}, 0.01)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, math.MaxFloat64, trailAt(t, p, i, j), "(%d,%d)", i, j)
		}
	}
}
