// Package population exposes generation and variation to an external
// optimizer as ordered batch operations.
package population

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/frenet"
	"github.com/lixenwraith/roadgen/genetic"
	"github.com/lixenwraith/roadgen/roadgen"
	"github.com/lixenwraith/roadgen/scenario"
	"github.com/lixenwraith/roadgen/variation"
)

var _ genetic.Codec[scenario.Scenario, frenet.Polyline] = scenario.Codec{}

// Adapter owns the seed stream; every batch call splits its own stream from it
type Adapter struct {
	generator   *roadgen.Generator
	mutator     *variation.Mutator
	crossover   *variation.Crossover
	codec       genetic.Codec[scenario.Scenario, frenet.Polyline]
	parallelism int

	mu  sync.Mutex
	rng *rand.Rand
}

// New wires generator and operators from one configuration.
// Population.Seed 0 draws a random seed.
func New(cfg config.Config) (*Adapter, error) {
	g, err := roadgen.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("population: %w", err)
	}

	return &Adapter{
		generator:   g,
		mutator:     variation.NewMutator(cfg),
		crossover:   variation.NewCrossover(cfg),
		codec:       g.Codec(),
		parallelism: cfg.Population.Parallelism,
		rng:         genetic.NewRand(cfg.Population.Seed),
	}, nil
}

// stream derives an independent random source for one batch call
func (a *Adapter) stream() *rand.Rand {
	a.mu.Lock()
	defer a.mu.Unlock()
	return genetic.SplitRand(a.rng)
}

// Generate creates n scenarios with independent generator calls. Results keep
// index order; the first failing member aborts the batch.
func (a *Adapter) Generate(ctx context.Context, n int) ([]scenario.Scenario, error) {
	log.Printf("population: generating %d scenarios, parallelism %d", n, a.parallelism)

	members, err := genetic.Populate(ctx, n, a.parallelism, a.stream(), a.generator.Initializer())
	if err != nil {
		return nil, fmt.Errorf("generating population: %w", err)
	}
	return members, nil
}

// Mutate returns a batch of the same length and order. Values carried in from
// outside the configured ranges come back clamped.
func (a *Adapter) Mutate(batch []scenario.Scenario) []scenario.Scenario {
	return genetic.ClampAll(a.codec, a.mutator.MutateBatch(batch, a.stream()))
}

// Crossover returns one clamped child pair per parent pair
func (a *Adapter) Crossover(pairs [][2]scenario.Scenario) [][2]scenario.Scenario {
	return genetic.ClampPairs(a.codec, a.crossover.CrossBatch(pairs, a.stream()))
}

// Validate checks each scenario's coarse and dense polylines; nil marks a valid road
func (a *Adapter) Validate(batch []scenario.Scenario) []error {
	errs := make([]error, len(batch))
	for i, s := range batch {
		errs[i] = a.generator.Check(s)
	}
	return errs
}

// Codec returns the scenario codec
func (a *Adapter) Codec() scenario.Codec {
	return a.generator.Codec()
}
