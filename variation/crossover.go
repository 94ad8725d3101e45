package variation

import (
	"math/rand/v2"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/genetic"
	"github.com/lixenwraith/roadgen/scenario"
)

var _ genetic.Combiner[scenario.Scenario] = (*Crossover)(nil)

// minCrossLength is the exclusive lower bound on both parent lengths
const minCrossLength = 2

// Crossover is single-point recombination of two maneuver sequences
type Crossover struct {
	combiner genetic.SinglePointCombiner[scenario.Scenario, scenario.Maneuver]
}

// NewCrossover reads the crossover rate from the configuration
func NewCrossover(cfg config.Config) *Crossover {
	return NewCrossoverRate(cfg.Variation.CrossoverRate)
}

// NewCrossoverRate builds a crossover with an explicit rate
func NewCrossoverRate(rate float64) *Crossover {
	return &Crossover{
		combiner: genetic.SinglePointCombiner[scenario.Scenario, scenario.Maneuver]{
			Rate:      rate,
			MinLength: minCrossLength,
		},
	}
}

// Rate returns the recombination probability
func (c *Crossover) Rate() float64 {
	return c.combiner.Rate
}

// Cross returns two children. Without recombination, or when either parent
// has 2 maneuvers or fewer, the children are copies of the parents.
func (c *Crossover) Cross(a, b scenario.Scenario, rng *rand.Rand) (scenario.Scenario, scenario.Scenario) {
	return c.combiner.Cross(a, b, rng)
}

// Combine recombines the first two candidates
func (c *Crossover) Combine(parents []genetic.Candidate[scenario.Scenario], rng *rand.Rand) []scenario.Scenario {
	return c.combiner.Combine(parents, rng)
}

// CrossBatch recombines every pair, keeping order
func (c *Crossover) CrossBatch(pairs [][2]scenario.Scenario, rng *rand.Rand) [][2]scenario.Scenario {
	out := make([][2]scenario.Scenario, len(pairs))
	for i, p := range pairs {
		out[i][0], out[i][1] = c.Cross(p[0], p[1], rng)
	}
	return out
}
