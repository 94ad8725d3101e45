package genetic

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// --- Constrained Initialization ---

// ErrNoSolution is returned when sampling never satisfies the constraints
var ErrNoSolution = errors.New("no solution within attempt limit")

// MonteCarloInitializer creates solutions by repeated sampling until one
// passes the constraints.
//
// On exhaustion it reports ErrNoSolution instead of the last unchecked sample.
// A nil Constraints accepts every sample.
type MonteCarloInitializer[S Solution] struct {
	// SampleSpace draws one candidate solution
	SampleSpace func(rng *rand.Rand) (S, error)
	// Constraints defines validity checks for generated solutions
	Constraints func(solution S) bool
	// MaxAttempts limits retry attempts for constraint satisfaction
	MaxAttempts int
}

// Generate samples up to MaxAttempts times. Sampling errors count as failed
// attempts; the last one is wrapped into the exhaustion error.
func (mci *MonteCarloInitializer[S]) Generate(rng *rand.Rand) (S, error) {
	attempts := max(mci.MaxAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		candidate, err := mci.SampleSpace(rng)
		if err != nil {
			lastErr = err
			continue
		}
		if mci.Constraints == nil || mci.Constraints(candidate) {
			return candidate, nil
		}
	}

	var zero S
	if lastErr != nil {
		return zero, fmt.Errorf("%w (%d attempts): %w", ErrNoSolution, attempts, lastErr)
	}
	return zero, fmt.Errorf("%w (%d attempts)", ErrNoSolution, attempts)
}

// Initializer exposes Generate as an InitializerFunc
func (mci *MonteCarloInitializer[S]) Initializer() InitializerFunc[S] {
	return mci.Generate
}
