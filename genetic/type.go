// Package genetic holds the generic operator contracts shared by the variation
// operators and the population adapters. It has no knowledge of roads.
package genetic

import (
	"math/rand/v2"
)

// --- Core Type Constraints ---

// Solution represents any type that can be used as a solution encoding.
// Operators treat it as opaque; only codecs know its structure.
type Solution any

// --- Core Data Structures ---

// Candidate wraps a solution handed over by the host optimizer.
// Scores and selection stay with the optimizer; operators read Data only.
type Candidate[S Solution] struct {
	// Data holds the encoded solution representation
	Data S
	// Metadata carries optimizer-owned annotations, never read by operators
	Metadata map[string]any
}

// Wrap lifts plain solutions into candidates
func Wrap[S Solution](solutions ...S) []Candidate[S] {
	out := make([]Candidate[S], len(solutions))
	for i, s := range solutions {
		out[i] = Candidate[S]{Data: s}
	}
	return out
}

// --- Function Types for Flexibility ---

// InitializerFunc creates one solution from an owned random source.
// The source is never shared between concurrent calls, so implementations
// may draw from it freely. A failed sample is reported as an error rather
// than an unchecked fallback value.
type InitializerFunc[S Solution] func(rng *rand.Rand) (S, error)

// --- Operator Interfaces ---

// Perturbator defines the mutation operator for introducing variation
type Perturbator[S Solution] interface {
	// Perturb replaces *solution with a varied copy with probability rate.
	// The previous value is never modified.
	Perturb(solution *S, rate float64, rng *rand.Rand)
}

// Combiner defines the recombination operator.
// Implementations must tolerate fewer than two parents and return copies so
// offspring never alias parent storage.
type Combiner[S Solution] interface {
	// Combine creates offspring from the first two parents
	Combine(parents []Candidate[S], rng *rand.Rand) []S
}
