// Package aco_test provides helpers shared across *_test.go files.
package aco_test

import (
	"testing"

	"github.com/katalvlaran/antsys/aco"
	"github.com/stretchr/testify/require"
)

// referenceRows is the 5-location reference instance.
var referenceRows = [][]float64{
	{0, 5, 7, 2, 1},
	{5, 0, 8, 5, 3},
	{7, 8, 0, 10, 3},
	{2, 5, 10, 0, 4},
	{1, 3, 3, 4, 0},
}

// referenceModel builds the validated reference distance model.
func referenceModel(t testing.TB) *aco.DistanceModel {
	t.Helper()
	dm, err := aco.DistanceModelFromRows(referenceRows, true)
	require.NoError(t, err)
	return dm
}

// onesTrail returns an all-ones trail of size n.
func onesTrail(t testing.TB, n int) *aco.PheromoneTrail {
	t.Helper()
	tr, err := aco.NewPheromoneTrail(n, 1)
	require.NoError(t, err)
	return tr
}

// ring builds a symmetric instance of n locations on a line-wrapped ring:
// distance(i,j) = 1 + min(|i−j|, n−|i−j|) + small index ripple.
func ring(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			if i == j {
				continue
			}
			d := i - j
			if d < 0 {
				d = -d
			}
			if n-d < d {
				d = n - d
			}
			out[i][j] = float64(d) + 0.01*float64((i+j)%3)
		}
	}
	return out
}

// requireValidTour asserts the closed-tour invariants and the length identity.
func requireValidTour(t *testing.T, dm *aco.DistanceModel, tour aco.Tour) {
	t.Helper()
	n := dm.Size()
	path := tour.Path()
	require.NoError(t, aco.ValidateTour(path, n))
	require.Len(t, path, n+1)

	var sum float64
	for i := 0; i+1 < len(path); i++ {
		d, err := dm.Distance(path[i], path[i+1])
		require.NoError(t, err)
		sum += d
	}
	require.Equal(t, sum, tour.Length(), "length must equal the consecutive-pair sum")

	edges := tour.EdgeSet()
	require.Len(t, edges, n, "a closed n-tour has n distinct edges")
}
