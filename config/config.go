// Package config holds the read-only run configuration shared by the
// generator, the variation operators and the population adapters.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/roadgen/geometry"
	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/scenario"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is fixed for a run and passed explicitly at construction time
type Config struct {
	Road       RoadConfig       `toml:"road" yaml:"road"`
	Generation GenerationConfig `toml:"generation" yaml:"generation"`
	Validity   ValidityConfig   `toml:"validity" yaml:"validity"`
	Variation  VariationConfig  `toml:"variation" yaml:"variation"`
	Population PopulationConfig `toml:"population" yaml:"population"`
}

// RoadConfig is the map envelope and maneuver value ranges
type RoadConfig struct {
	MapSize   float64 `toml:"map_size" yaml:"map_size"`
	LaneWidth float64 `toml:"lane_width" yaml:"lane_width"`
	MinLength int     `toml:"min_len" yaml:"min_len"`
	MaxLength int     `toml:"max_len" yaml:"max_len"`
	MinAngle  int     `toml:"min_angle" yaml:"min_angle"`
	MaxAngle  int     `toml:"max_angle" yaml:"max_angle"`
}

// GenerationConfig drives grow-and-rollback
type GenerationConfig struct {
	Encoding       scenario.Encoding `toml:"encoding" yaml:"encoding"`
	StepSize       float64           `toml:"step_size" yaml:"step_size"`
	CurvatureBound float64           `toml:"curvature_bound" yaml:"curvature_bound"`
	IndexMin       int               `toml:"index_min" yaml:"index_min"`
	IndexMax       int               `toml:"index_max" yaml:"index_max"`
	SegmentLength  int               `toml:"segment_length" yaml:"segment_length"`
	TurnLength     float64           `toml:"turn_length" yaml:"turn_length"`
	MaxSteps       int               `toml:"max_steps" yaml:"max_steps"`
	MaxAttempts    int               `toml:"max_attempts" yaml:"max_attempts"`
	MinManeuvers   int               `toml:"min_maneuvers" yaml:"min_maneuvers"`
}

// ValidityConfig selects the oracle policy and its thresholds
type ValidityConfig struct {
	Policy                geometry.Policy `toml:"policy" yaml:"policy"`
	MaxCurvature          float64         `toml:"max_curvature" yaml:"max_curvature"`
	InterpolationDistance float64         `toml:"interpolation_distance" yaml:"interpolation_distance"`
	MinNodes              int             `toml:"min_nodes" yaml:"min_nodes"`
}

// VariationConfig holds mutation and crossover probabilities
type VariationConfig struct {
	MutationRate  float64 `toml:"mut_rate" yaml:"mut_rate"`
	CrossoverRate float64 `toml:"cross_rate" yaml:"cross_rate"`
	MaxMutations  int     `toml:"max_mutations" yaml:"max_mutations"`
}

// PopulationConfig controls batch generation
type PopulationConfig struct {
	Size        int    `toml:"size" yaml:"size"`
	Parallelism int    `toml:"parallelism" yaml:"parallelism"`
	Seed        uint64 `toml:"seed" yaml:"seed"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Road: RoadConfig{
			MapSize:   parameter.MapSize,
			LaneWidth: parameter.LaneWidth,
			MinLength: parameter.MinSegmentLength,
			MaxLength: parameter.MaxSegmentLength,
			MinAngle:  parameter.MinTurnAngle,
			MaxAngle:  parameter.MaxTurnAngle,
		},
		Generation: GenerationConfig{
			Encoding:       scenario.EncodingAngle,
			StepSize:       parameter.StepSize,
			CurvatureBound: parameter.CurvatureBound,
			IndexMin:       parameter.CurvatureIndexMin,
			IndexMax:       parameter.CurvatureIndexMax,
			SegmentLength:  parameter.SegmentLength,
			TurnLength:     parameter.TurnLength,
			MaxSteps:       parameter.GrowthMaxSteps,
			MaxAttempts:    parameter.GenerationMaxAttempts,
			MinManeuvers:   parameter.GenerationMinManeuvers,
		},
		Validity: ValidityConfig{
			Policy:                geometry.PolicyBoundaryAndCurvature,
			MaxCurvature:          parameter.MaxCurvature,
			InterpolationDistance: parameter.InterpolationDistance,
			MinNodes:              parameter.MinInterpolationNodes,
		},
		Variation: VariationConfig{
			MutationRate:  parameter.GAMutationRate,
			CrossoverRate: parameter.GACrossoverRate,
			MaxMutations:  parameter.GAMaxMutations,
		},
		Population: PopulationConfig{
			Size:        parameter.GAPopulationSize,
			Parallelism: parameter.GAParallelism,
		},
	}
}

// Load decodes a TOML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes the configuration as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks every range the engine relies on
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	r, g, v := c.Road, c.Generation, c.Validity
	check(r.MapSize > 0, "road.map_size must be positive, got %v", r.MapSize)
	check(r.MinLength >= 1 && r.MinLength <= r.MaxLength, "road length range [%d, %d] is empty or non-positive", r.MinLength, r.MaxLength)
	check(r.MinAngle >= 1 && r.MinAngle <= r.MaxAngle, "road angle range [%d, %d] is empty or non-positive", r.MinAngle, r.MaxAngle)

	_, encErr := scenario.ParseEncoding(string(g.Encoding))
	check(encErr == nil, "generation.encoding: %v", encErr)
	check(g.StepSize > 0, "generation.step_size must be positive, got %v", g.StepSize)
	check(g.CurvatureBound > 0, "generation.curvature_bound must be positive, got %v", g.CurvatureBound)
	check(g.IndexMin < g.IndexMax, "generation index range [%d, %d) is empty", g.IndexMin, g.IndexMax)
	check(g.SegmentLength >= 1, "generation.segment_length must be at least 1, got %d", g.SegmentLength)
	check(g.TurnLength > 0, "generation.turn_length must be positive, got %v", g.TurnLength)
	check(g.MaxSteps >= 1, "generation.max_steps must be at least 1, got %d", g.MaxSteps)
	check(g.MaxAttempts >= 1, "generation.max_attempts must be at least 1, got %d", g.MaxAttempts)
	check(g.MinManeuvers >= 0, "generation.min_maneuvers must not be negative, got %d", g.MinManeuvers)

	_, polErr := geometry.ParsePolicy(string(v.Policy))
	check(polErr == nil, "validity.policy: %v", polErr)
	check(v.MaxCurvature > 0, "validity.max_curvature must be positive, got %v", v.MaxCurvature)
	check(v.InterpolationDistance > 0, "validity.interpolation_distance must be positive, got %v", v.InterpolationDistance)
	check(v.MinNodes >= 1, "validity.min_nodes must be at least 1, got %d", v.MinNodes)

	vr := c.Variation
	check(vr.MutationRate >= 0 && vr.MutationRate <= 1, "variation.mut_rate %v outside [0, 1]", vr.MutationRate)
	check(vr.CrossoverRate >= 0 && vr.CrossoverRate <= 1, "variation.cross_rate %v outside [0, 1]", vr.CrossoverRate)
	check(vr.MaxMutations >= 1, "variation.max_mutations must be at least 1, got %d", vr.MaxMutations)

	check(c.Population.Size >= 0, "population.size must not be negative, got %d", c.Population.Size)
	check(c.Population.Parallelism >= 1, "population.parallelism must be at least 1, got %d", c.Population.Parallelism)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Codec returns the scenario codec for this configuration
func (c Config) Codec() scenario.Codec {
	return scenario.Codec{
		Encoding:       c.Generation.Encoding,
		MapSize:        c.Road.MapSize,
		StepSize:       c.Generation.StepSize,
		CurvatureBound: c.Generation.CurvatureBound,
		SegmentLength:  c.Generation.SegmentLength,
		TurnLength:     c.Generation.TurnLength,
		Ranges: scenario.Ranges{
			MinLength: c.Road.MinLength,
			MaxLength: c.Road.MaxLength,
			MinAngle:  c.Road.MinAngle,
			MaxAngle:  c.Road.MaxAngle,
		},
	}
}

// Oracle returns the validity predicate for this configuration
func (c Config) Oracle() geometry.Oracle {
	return geometry.Oracle{
		Policy: c.Validity.Policy,
		Options: geometry.Options{
			MapSize:               c.Road.MapSize,
			MaxCurvature:          c.Validity.MaxCurvature,
			InterpolationDistance: c.Validity.InterpolationDistance,
			MinNodes:              c.Validity.MinNodes,
		},
	}
}
