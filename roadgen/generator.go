// Package roadgen grows random road scenarios maneuver by maneuver, rolling
// back the extension that first breaks validity.
package roadgen

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/frenet"
	"github.com/lixenwraith/roadgen/genetic"
	"github.com/lixenwraith/roadgen/geometry"
	"github.com/lixenwraith/roadgen/scenario"
)

var (
	// ErrStepLimit is returned by Grow when the road stayed valid for MaxSteps maneuvers
	ErrStepLimit = errors.New("road growth reached step limit")
	// ErrGenerationFailed is returned by Generate after MaxAttempts rejected growths
	ErrGenerationFailed = errors.New("scenario generation failed")
)

// minCheckedPoints is the polyline size from which the oracle is consulted
const minCheckedPoints = 3

// Generator produces scenarios whose coarse and dense polylines pass the
// configured oracle
type Generator struct {
	codec  scenario.Codec
	oracle geometry.Oracle

	indexMin, indexMax int
	maxSteps           int
	maxAttempts        int
	minManeuvers       int
}

// New builds a generator from a validated configuration
func New(cfg config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := cfg.Generation
	return &Generator{
		codec:        cfg.Codec(),
		oracle:       cfg.Oracle(),
		indexMin:     g.IndexMin,
		indexMax:     g.IndexMax,
		maxSteps:     g.MaxSteps,
		maxAttempts:  g.MaxAttempts,
		minManeuvers: max(g.MinManeuvers, 1),
	}, nil
}

// Codec returns the codec used to expand generated scenarios
func (g *Generator) Codec() scenario.Codec {
	return g.codec
}

// Oracle returns the validity predicate used during growth
func (g *Generator) Oracle() geometry.Oracle {
	return g.oracle
}

// Grow runs one grow-and-rollback pass. The result is the longest prefix whose
// polylines stayed valid; it is empty when the first extension was rejected.
// When the road never turns invalid the prefix is returned with ErrStepLimit.
//
// Each sampled index is integrated as a whole maneuver rather than a single
// step, so the returned scenario re-expands to exactly the checked roads.
// Two builders run side by side: the coarse one at StepSize and the unit-step
// one simulators receive through Codec.Dense. An extension is kept only while
// both pass the oracle.
func (g *Generator) Grow(rng *rand.Rand) (scenario.Scenario, error) {
	coarse := frenet.NewBuilder(g.codec.MapSize)
	dense := frenet.NewBuilder(g.codec.MapSize)
	valid := scenario.Scenario{}

	for range g.maxSteps {
		index := g.indexMin + rng.IntN(g.indexMax-g.indexMin)
		m := g.codec.FromIndex(index)

		g.codec.Extend(coarse, m, g.codec.StepSize)
		g.codec.Extend(dense, m, 1)

		if !g.checked(coarse) || !g.checked(dense) {
			return valid, nil
		}
		valid = append(valid, m)
	}

	return valid, fmt.Errorf("%w: %d maneuvers still valid", ErrStepLimit, len(valid))
}

// checked reports whether the builder's road passes the oracle; roads too
// short to judge pass
func (g *Generator) checked(b *frenet.Builder) bool {
	return b.Len() < minCheckedPoints || g.oracle.Valid(b.Points().XY())
}

// Check expands a scenario at the coarse step and at unit step and returns the
// first rule either road violates, or nil
func (g *Generator) Check(s scenario.Scenario) error {
	if err := g.oracle.Check(g.codec.Decode(s).XY()); err != nil {
		return err
	}
	if err := g.oracle.Check(g.codec.Dense(s).XY()); err != nil {
		return fmt.Errorf("dense road: %w", err)
	}
	return nil
}

// accept re-expands a grown scenario from scratch
func (g *Generator) accept(s scenario.Scenario) bool {
	return len(s) >= g.minManeuvers && g.Check(s) == nil
}

// Generate retries Grow until a scenario with at least MinManeuvers maneuvers
// passes the oracle, up to MaxAttempts times
func (g *Generator) Generate(rng *rand.Rand) (scenario.Scenario, error) {
	mci := &genetic.MonteCarloInitializer[scenario.Scenario]{
		SampleSpace: g.Grow,
		Constraints: g.accept,
		MaxAttempts: g.maxAttempts,
	}

	s, err := mci.Generate(rng)
	if err != nil {
		log.Printf("roadgen: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return s, nil
}

// Initializer exposes Generate as a generic initializer
func (g *Generator) Initializer() genetic.InitializerFunc[scenario.Scenario] {
	return g.Generate
}
