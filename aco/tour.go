// Package aco - tours and their derived attributes.
//
// A Tour is a closed path [s, …, s] of length n+1 visiting every location
// once before returning to s. Length and edges are derived once at build time;
// the value is immutable afterwards (accessors return copies).
package aco

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Edge is an ordered pair of locations traversed by a tour.
type Edge struct {
	From int
	To   int
}

// Tour is an immutable closed tour with its total length.
// The zero value is the empty tour (no path, length 0); prefer EmptyTour for
// a "no tour yet" baseline.
type Tour struct {
	path   []int
	length float64
}

// EmptyTour returns the "no tour yet" sentinel: no path and +Inf length,
// so any real tour compares strictly shorter.
func EmptyTour() Tour {
	return Tour{length: math.Inf(1)}
}

// NewTour validates a closed path against dm and computes its length.
//
// Errors: ErrInvalidTour when path is not a closed Hamiltonian cycle over
// dm's locations.
//
// Complexity: O(n).
func NewTour(dm *DistanceModel, path []int) (Tour, error) {
	if err := ValidateTour(path, dm.Size()); err != nil {
		return Tour{}, err
	}
	cp := append([]int(nil), path...)

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(cp); i++ {
		if w, err = dm.Distance(cp[i], cp[i+1]); err != nil {
			return Tour{}, ErrInvalidTour
		}
		sum += w
	}

	return Tour{path: cp, length: sum}, nil
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(path) == n+1, path[0] == path[n],
//	each location in [0, n) appears exactly once in positions [0, n).
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(path []int, n int) error {
	if n < 2 || len(path) != n+1 {
		return ErrInvalidTour
	}
	if path[0] != path[n] {
		return ErrInvalidTour
	}

	seen := make([]bool, n)
	for _, v := range path[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// Path returns a copy of the closed location sequence.
func (t Tour) Path() []int { return append([]int(nil), t.path...) }

// Length returns the total tour length (+Inf for EmptyTour).
func (t Tour) Length() float64 { return t.length }

// IsEmpty reports whether the tour has no path.
func (t Tour) IsEmpty() bool { return len(t.path) == 0 }

// Start returns the first location, or -1 for an empty tour.
func (t Tour) Start() int {
	if t.IsEmpty() {
		return -1
	}
	return t.path[0]
}

// Less orders tours by length ascending.
func (t Tour) Less(other Tour) bool { return t.length < other.length }

// Edges returns the n ordered pairs (path[i], path[i+1]) in traversal order.
func (t Tour) Edges() []Edge {
	if len(t.path) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(t.path)-1)
	for i := 0; i+1 < len(t.path); i++ {
		out = append(out, Edge{From: t.path[i], To: t.path[i+1]})
	}
	return out
}

// EdgeSet returns the set of ordered pairs traversed by the tour.
func (t Tour) EdgeSet() map[Edge]struct{} {
	edges := t.Edges()
	set := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}
	return set
}

// Format renders the path as "1 -> 5 -> … -> 1" using 1-indexed labels.
// When labels is non-nil and long enough, labels[v] is used instead.
func (t Tour) Format(labels []string) string {
	parts := make([]string, len(t.path))
	for i, v := range t.path {
		if v < len(labels) && labels[v] != "" {
			parts[i] = labels[v]
			continue
		}
		parts[i] = strconv.Itoa(v + 1)
	}
	return strings.Join(parts, " -> ")
}

// String implements fmt.Stringer.
func (t Tour) String() string {
	if t.IsEmpty() {
		return "<empty tour>"
	}
	return t.Format(nil) + " (length " + strconv.FormatFloat(t.length, 'g', -1, 64) + ")"
}

// tourJSON is the wire form of a Tour.
type tourJSON struct {
	Path   []int    `json:"path"`
	Length *float64 `json:"length"`
}

// MarshalJSON encodes the tour as {"path": [...], "length": L}.
// The empty tour encodes its infinite length as null.
func (t Tour) MarshalJSON() ([]byte, error) {
	out := tourJSON{Path: t.Path()}
	if out.Path == nil {
		out.Path = []int{}
	}
	if !math.IsInf(t.length, 0) {
		l := t.length
		out.Length = &l
	}
	return json.Marshal(out)
}
