package genetic

import (
	"math/rand/v2"
	"slices"
)

// --- Crossover Operators ---

// SinglePointCombiner recombines variable-length sequences at one cut point.
// Parents shorter than or equal to MinLength are copied, never recombined.
//
// The cut is drawn from [1, min(len(a), len(b))-1], so each child keeps at
// least one element of its own head and receives a non-empty tail. Children
// take the tail length of the other parent, so lengths may swap.
type SinglePointCombiner[S ~[]T, T any] struct {
	// Rate is the probability of recombination (0-1)
	Rate float64
	// MinLength is the exclusive lower bound on both parent lengths; values
	// below 1 are treated as 1
	MinLength int
}

// Combine returns two children from the first two parents. Fewer than two
// parents are returned as copies.
func (c *SinglePointCombiner[S, T]) Combine(parents []Candidate[S], rng *rand.Rand) []S {
	switch len(parents) {
	case 0:
		return []S{}
	case 1:
		return []S{slices.Clone(parents[0].Data)}
	}

	a, b := c.Cross(parents[0].Data, parents[1].Data, rng)
	return []S{a, b}
}

// Cross is the two-parent form of Combine
func (c *SinglePointCombiner[S, T]) Cross(a, b S, rng *rand.Rand) (S, S) {
	if rng.Float64() >= c.Rate {
		return slices.Clone(a), slices.Clone(b)
	}

	guard := max(c.MinLength, 1)
	if len(a) <= guard || len(b) <= guard {
		return slices.Clone(a), slices.Clone(b)
	}

	// point in [1, min(|a|,|b|)-1]
	point := 1 + rng.IntN(min(len(a), len(b))-1)
	return SplitAt(a, b, point)
}

// --- Helpers ---

// SplitAt exchanges the tails of a and b from point on. Inputs are not modified.
func SplitAt[S ~[]T, T any](a, b S, point int) (S, S) {
	childA := append(slices.Clone(a[:point]), b[point:]...)
	childB := append(slices.Clone(b[:point]), a[point:]...)
	return childA, childB
}
