package aco

import "errors"

// Sentinel errors. Callers match them with errors.Is; functions may wrap them
// with additional context.
var (
	// ErrDimensionMismatch is returned for shape inconsistencies: n < 2,
	// trail/distance size mismatch, wrong tour length.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrNonSquare is returned when the distance matrix is not square.
	ErrNonSquare = errors.New("aco: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when distance(i, i) is not zero.
	ErrNonZeroDiagonal = errors.New("aco: distance diagonal must be zero")

	// ErrNegativeDistance is returned for a negative off-diagonal distance.
	ErrNegativeDistance = errors.New("aco: negative distance")

	// ErrZeroDistance is returned for a zero distance between two distinct
	// locations; the desirability term would divide by zero.
	ErrZeroDistance = errors.New("aco: zero distance between distinct locations")

	// ErrNonFinite is returned for NaN or ±Inf distances.
	ErrNonFinite = errors.New("aco: non-finite distance")

	// ErrAsymmetry is returned when symmetry is required but violated.
	ErrAsymmetry = errors.New("aco: distance matrix is not symmetric")

	// ErrStartOutOfRange is returned when a start location is outside [0, n).
	ErrStartOutOfRange = errors.New("aco: start location out of range")

	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("aco: invalid options")

	// ErrInvalidTour is returned when a path is not a closed Hamiltonian cycle.
	ErrInvalidTour = errors.New("aco: invalid tour")

	// ErrEmptyResult is returned by Run when no real tour was ever
	// constructed (e.g. zero iterations). It signals a logic error.
	ErrEmptyResult = errors.New("aco: global best tour has no path")
)

// IterationResult is the outcome of one generation.
type IterationResult struct {
	// Index is the zero-based iteration number.
	Index int

	// Best is the shortest tour of this iteration; ties go to the first
	// tour in construction order.
	Best Tour

	// Tours holds every ant's tour in construction order.
	Tours []Tour
}

// Result is the outcome of a full optimization run.
type Result struct {
	// RunID identifies the run in logs and traces.
	RunID string `json:"run_id"`

	// Best is the shortest tour seen across all iterations.
	Best Tour `json:"best"`

	// BestIteration is the zero-based iteration that produced Best.
	BestIteration int `json:"best_iteration"`

	// Iterations is the number of generations executed.
	Iterations int `json:"iterations"`
}

// Observer is notified after every completed iteration, in order.
type Observer func(IterationResult)
