package variation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/roadgen/genetic"
	"github.com/lixenwraith/roadgen/scenario"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func sample() scenario.Scenario {
	return scenario.Scenario{
		{Kind: scenario.Straight, Value: 30},
		{Kind: scenario.Left, Value: 20},
		{Kind: scenario.Right, Value: 45},
		{Kind: scenario.Straight, Value: 12},
		{Kind: scenario.Left, Value: 70},
	}
}

func randomScenario(n int, seed uint64) scenario.Scenario {
	rng := genetic.NewRand(seed)
	s := make(scenario.Scenario, n)
	for i := range s {
		kind := scenario.Kinds[rng.IntN(len(scenario.Kinds))]
		value := 5 + rng.IntN(25)
		if kind.IsTurn() {
			value = 10 + rng.IntN(70)
		}
		s[i] = scenario.Maneuver{Kind: kind, Value: value}
	}
	return s
}
