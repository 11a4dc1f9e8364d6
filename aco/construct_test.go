package aco_test

import (
	"testing"

	"github.com/katalvlaran/antsys/aco"
	"github.com/stretchr/testify/require"
)

// TestConstructTour_ReferenceFirstMove checks the documented first move: from
// location 0 with a uniform trail and β=2 the nearest location (4, distance 1)
// has the highest desirability.
func TestConstructTour_ReferenceFirstMove(t *testing.T) {
	dm := referenceModel(t)
	tour, err := aco.ConstructTour(dm, onesTrail(t, 5), 0, 2)
	require.NoError(t, err)

	path := tour.Path()
	require.Equal(t, []int{0, 4}, path[:2])
	// From 4, locations 1 and 2 tie at distance 3; the lower index wins.
	require.Equal(t, []int{0, 4, 1, 3, 2, 0}, path)
	require.Equal(t, 26.0, tour.Length())
	requireValidTour(t, dm, tour)
}

func TestConstructTour_ReferenceAllStarts(t *testing.T) {
	dm := referenceModel(t)
	want := map[int][]int{
		0: {0, 4, 1, 3, 2, 0},
		1: {1, 4, 0, 3, 2, 1},
		2: {2, 4, 0, 3, 1, 2},
		3: {3, 0, 4, 1, 2, 3},
		4: {4, 0, 3, 1, 2, 4},
	}
	for start, path := range want {
		tour, err := aco.ConstructTour(dm, onesTrail(t, 5), start, 2)
		require.NoError(t, err)
		require.Equal(t, path, tour.Path(), "start %d", start)
		requireValidTour(t, dm, tour)
	}
}

func TestConstructTour_TieBreakLowestIndex(t *testing.T) {
	const n = 4
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{1, 1, 1, 1}
		rows[i][i] = 0
	}
	dm, err := aco.DistanceModelFromRows(rows, true)
	require.NoError(t, err)

	tour, err := aco.ConstructTour(dm, onesTrail(t, n), 2, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1, 3, 2}, tour.Path())
}

func TestConstructTour_TrailBiasesChoice(t *testing.T) {
	dm := referenceModel(t)
	trail := onesTrail(t, 5)

	// Reinforce (0,3) repeatedly with a tour that never uses (0,4).
	reinforce, err := aco.NewTour(dm, []int{0, 3, 1, 2, 4, 0})
	require.NoError(t, err)
	tours := make([]aco.Tour, 10)
	for i := range tours {
		tours[i] = reinforce
	}
	require.NoError(t, trail.Update(dm, tours, 0.71))

	tour, err := aco.ConstructTour(dm, trail, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, tour.Path()[1], "strong trail on (0,3) must beat proximity of 4")
}

func TestConstructTour_Deterministic(t *testing.T) {
	dm, err := aco.DistanceModelFromRows(ring(9), true)
	require.NoError(t, err)
	trail := onesTrail(t, 9)

	a, err := aco.ConstructTour(dm, trail, 3, 2)
	require.NoError(t, err)
	b, err := aco.ConstructTour(dm, trail, 3, 2)
	require.NoError(t, err)
	require.Equal(t, a.Path(), b.Path())
	require.Equal(t, a.Length(), b.Length())
}

func TestConstructTour_ValidOnRings(t *testing.T) {
	for n := 2; n <= 12; n++ {
		dm, err := aco.DistanceModelFromRows(ring(n), true)
		require.NoError(t, err)
		trail := onesTrail(t, n)
		for s := 0; s < n; s++ {
			tour, err := aco.ConstructTour(dm, trail, s, 2)
			require.NoError(t, err)
			require.Equal(t, s, tour.Start())
			requireValidTour(t, dm, tour)
		}
	}
}

func TestConstructTour_Errors(t *testing.T) {
	dm := referenceModel(t)

	_, err := aco.ConstructTour(dm, onesTrail(t, 5), 5, 2)
	require.ErrorIs(t, err, aco.ErrStartOutOfRange)

	_, err = aco.ConstructTour(dm, onesTrail(t, 5), -1, 2)
	require.ErrorIs(t, err, aco.ErrStartOutOfRange)

	_, err = aco.ConstructTour(dm, onesTrail(t, 4), 0, 2)
	require.ErrorIs(t, err, aco.ErrDimensionMismatch)

	_, err = aco.ConstructTour(dm, onesTrail(t, 5), 0, 0)
	require.ErrorIs(t, err, aco.ErrInvalidOptions)
}
