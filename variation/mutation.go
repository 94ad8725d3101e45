// Package variation holds the genetic operators over maneuver sequences.
// Operators never modify their inputs and never fail on short scenarios.
package variation

import (
	"math/rand/v2"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/genetic"
	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/scenario"
)

var _ genetic.Perturbator[scenario.Scenario] = (*Mutator)(nil)

// --- Mutation Operator ---

// Mutator applies exchange or value-change mutation with probability Rate.
// A mutation event draws 1..MaxMutations edits of a single mode: either
// index pairs are swapped, or maneuvers are retagged with a value drawn on
// the step grid of their new kind. The last maneuver is never edited.
type Mutator struct {
	// Rate is the probability that a scenario is mutated at all
	Rate float64
	// MaxMutations bounds the edits applied in one mutation event
	MaxMutations int
	// Ranges bound values drawn by value-change mutation
	Ranges scenario.Ranges
	// LengthStep and AngleStep space the candidate values
	LengthStep int
	AngleStep  int
}

// NewMutator reads rates and value ranges from the configuration
func NewMutator(cfg config.Config) *Mutator {
	return &Mutator{
		Rate:         cfg.Variation.MutationRate,
		MaxMutations: cfg.Variation.MaxMutations,
		Ranges:       cfg.Codec().Ranges,
		LengthStep:   parameter.LengthStep,
		AngleStep:    parameter.AngleStep,
	}
}

// Mutate returns s itself, or with probability Rate a mutated copy.
// Scenarios shorter than 2 are always returned as is.
func (mu *Mutator) Mutate(s scenario.Scenario, rng *rand.Rand) scenario.Scenario {
	return mu.mutate(s, mu.Rate, rng)
}

// Perturb is Mutate with an explicit rate
func (mu *Mutator) Perturb(solution *scenario.Scenario, rate float64, rng *rand.Rand) {
	if solution == nil {
		return
	}
	*solution = mu.mutate(*solution, rate, rng)
}

func (mu *Mutator) mutate(s scenario.Scenario, rate float64, rng *rand.Rand) scenario.Scenario {
	// index range [0, len-1) is empty below 2
	if len(s) < 2 {
		return s
	}
	if rng.Float64() >= rate {
		return s
	}

	out := s.Clone()
	n := 1 + rng.IntN(max(mu.MaxMutations, 1))
	if rng.IntN(2) == 0 {
		mu.exchange(out, n, rng)
	} else {
		mu.changeValues(out, n, rng)
	}
	return out
}

// --- Mutation Modes ---

// exchange swaps n independently drawn index pairs
func (mu *Mutator) exchange(s scenario.Scenario, n int, rng *rand.Rand) {
	for range n {
		i, j := rng.IntN(len(s)-1), rng.IntN(len(s)-1)
		s[i], s[j] = s[j], s[i]
	}
}

// changeValues retags n maneuvers to one of the other two kinds with a fresh value
func (mu *Mutator) changeValues(s scenario.Scenario, n int, rng *rand.Rand) {
	for range n {
		i := rng.IntN(len(s) - 1)

		others := make([]scenario.Kind, 0, len(scenario.Kinds)-1)
		for _, k := range scenario.Kinds {
			if k != s[i].Kind {
				others = append(others, k)
			}
		}
		kind := others[rng.IntN(len(others))]
		s[i] = scenario.Maneuver{Kind: kind, Value: mu.drawValue(kind, rng)}
	}
}

// drawValue picks from {min, min+step, ...} below max for the kind's range
func (mu *Mutator) drawValue(kind scenario.Kind, rng *rand.Rand) int {
	lo, hi, step := mu.Ranges.MinLength, mu.Ranges.MaxLength, mu.LengthStep
	if kind.IsTurn() {
		lo, hi, step = mu.Ranges.MinAngle, mu.Ranges.MaxAngle, mu.AngleStep
	}
	step = max(step, 1)

	count := (hi - lo + step - 1) / step
	if count <= 0 {
		return lo
	}
	return lo + step*rng.IntN(count)
}

// --- Batch ---

// MutateBatch mutates every element independently, keeping order
func (mu *Mutator) MutateBatch(batch []scenario.Scenario, rng *rand.Rand) []scenario.Scenario {
	out := make([]scenario.Scenario, len(batch))
	for i, s := range batch {
		out[i] = mu.Mutate(s, rng)
	}
	return out
}
