// Package suite stores generated scenarios as YAML test suites.
package suite

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/scenario"
)

var (
	// ErrUnknownKind is returned for a maneuver tag that is not straight, left or right
	ErrUnknownKind = errors.New("unknown maneuver kind")
	// ErrNegativeValue is returned for a maneuver with a negative length or magnitude
	ErrNegativeValue = errors.New("negative maneuver value")
)

// Suite is the serializable set of scenarios from one run
type Suite struct {
	Seed      uint64         `yaml:"seed"`
	Config    *config.Config `yaml:"config,omitempty"`
	Scenarios []ScenarioDTO  `yaml:"scenarios"`
}

// ScenarioDTO is a serializable scenario with an optional dense polyline
type ScenarioDTO struct {
	Maneuvers []ManeuverDTO `yaml:"maneuvers"`
	Points    [][2]float64  `yaml:"points,omitempty,flow"`
}

// ManeuverDTO is a serializable maneuver
type ManeuverDTO struct {
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
}

// FromScenarios converts scenarios to DTOs without points
func FromScenarios(scenarios []scenario.Scenario) Suite {
	s := Suite{Scenarios: make([]ScenarioDTO, len(scenarios))}
	for i, sc := range scenarios {
		maneuvers := make([]ManeuverDTO, len(sc))
		for j, m := range sc {
			maneuvers[j] = ManeuverDTO{Kind: m.Kind.String(), Value: m.Value}
		}
		s.Scenarios[i].Maneuvers = maneuvers
	}
	return s
}

// AttachPoints stores the dense polyline of every scenario, rounded to 3 decimals
func (s *Suite) AttachPoints(codec scenario.Codec) error {
	scenarios, err := s.ToScenarios()
	if err != nil {
		return err
	}

	for i, sc := range scenarios {
		dense := codec.Dense(sc)
		points := make([][2]float64, len(dense))
		for j, p := range dense {
			points[j] = [2]float64{round3(p.X), round3(p.Y)}
		}
		s.Scenarios[i].Points = points
	}
	return nil
}

// ToScenarios converts DTOs back, rejecting unknown kinds and negative values
func (s Suite) ToScenarios() ([]scenario.Scenario, error) {
	out := make([]scenario.Scenario, len(s.Scenarios))
	for i, dto := range s.Scenarios {
		sc := make(scenario.Scenario, len(dto.Maneuvers))
		for j, m := range dto.Maneuvers {
			kind, err := scenario.ParseKind(m.Kind)
			if err != nil {
				return nil, fmt.Errorf("scenario %d maneuver %d: %w: %w", i, j, ErrUnknownKind, err)
			}
			if m.Value < 0 {
				return nil, fmt.Errorf("scenario %d maneuver %d: %w: %d", i, j, ErrNegativeValue, m.Value)
			}
			sc[j] = scenario.Maneuver{Kind: kind, Value: m.Value}
		}
		out[i] = sc
	}
	return out, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
