package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/frenet"
	"github.com/lixenwraith/roadgen/genetic"
	"github.com/lixenwraith/roadgen/roadgen"
	"github.com/lixenwraith/roadgen/scenario"
	"github.com/lixenwraith/roadgen/variation"
)

// session holds the scenario on display and the operators that replace it
type session struct {
	generator *roadgen.Generator
	mutator   *variation.Mutator
	crossover *variation.Crossover
	codec     scenario.Codec
	mapSize   float64
	rng       *rand.Rand

	current scenario.Scenario
	road    frenet.Polyline
	err     error
	message string
}

func newSession(cfg config.Config) (*session, error) {
	g, err := roadgen.New(cfg)
	if err != nil {
		return nil, err
	}

	return &session{
		generator: g,
		mutator:   variation.NewMutator(cfg),
		// keys always recombine; the configured rate is for batch runs
		crossover: variation.NewCrossoverRate(1),
		codec:     g.Codec(),
		mapSize:   cfg.Road.MapSize,
		rng:       genetic.NewRand(cfg.Population.Seed),
		message:   "press g to generate a road",
	}, nil
}

// generate replaces the scenario with a fresh one
func (s *session) generate() bool {
	sc, err := s.generator.Generate(s.rng)
	if err != nil {
		s.err, s.message = err, "generation failed"
		return false
	}
	return s.show(sc, "generated")
}

// mutate always perturbs the current scenario
func (s *session) mutate() bool {
	if len(s.current) < 2 {
		s.message = "nothing to mutate"
		return false
	}
	next := s.current
	s.mutator.Perturb(&next, 1, s.rng)
	return s.show(next, "mutated")
}

// cross recombines the current scenario with a freshly generated partner
func (s *session) cross() bool {
	partner, err := s.generator.Generate(s.rng)
	if err != nil {
		s.err, s.message = err, "partner generation failed"
		return false
	}
	child, _ := s.crossover.Cross(s.current, partner, s.rng)
	return s.show(child, fmt.Sprintf("crossed with %d-maneuver partner", len(partner)))
}

// show displays sc and reports whether its roads pass the oracle
func (s *session) show(sc scenario.Scenario, action string) bool {
	s.current = sc
	s.road = s.codec.Dense(sc)
	s.err = s.generator.Check(sc)
	s.message = action
	return s.err == nil
}

// status summarizes the current scenario for the status line
func (s *session) status() string {
	validity := "valid"
	if s.err != nil {
		validity = "invalid: " + s.err.Error()
	}
	return fmt.Sprintf("%s | %d maneuvers | %s", s.message, len(s.current), validity)
}
