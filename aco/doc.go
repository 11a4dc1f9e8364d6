// Package aco implements the Ant System metaheuristic for small Travelling
// Salesman instances given as a dense distance matrix.
//
// A run is a sequence of iterations. In every iteration a fixed number of
// ants each build one closed tour with a greedy state-transition rule
// biased by the shared pheromone trail:
//
//	term(r, n) = trail(r, n) · (1 / distance(r, n))^β
//
// The ant at location r moves to the remaining location with the highest
// normalized term; exact ties go to the lowest location index. Once every
// ant has finished, the trail is updated in a single pass:
//
//	trail(m, n) ← (1 − α)·trail(m, n) + Σ_{tours using (m,n)} 1 / distance(m, n)
//
// Entry points:
//
//   - NewDistanceModel — validate an instance (square, n ≥ 2, zero diagonal,
//     strictly positive finite off-diagonal distances, optional symmetry).
//   - ConstructTour    — one ant, one tour, read-only trail access.
//   - NewColony        — owns the trail; RunIteration performs one generation,
//     Run performs Options.Iterations generations and tracks the global best.
//
// Concurrency: a Colony is not safe for concurrent use. Ants within an
// iteration are built sequentially and always observe the trail as it was at
// the end of the previous iteration.
package aco
