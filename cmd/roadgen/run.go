package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/population"
	"github.com/lixenwraith/roadgen/scenario"
	"github.com/lixenwraith/roadgen/suite"
)

// errInvalidScenarios makes validate exit non-zero
var errInvalidScenarios = errors.New("suite contains invalid scenarios")

// resolveConfig picks the explicit --config file, else the configuration
// stored with the suite, else defaults. A non-zero --seed always wins.
func (o *options) resolveConfig(stored *config.Config) (config.Config, error) {
	var cfg config.Config
	switch {
	case o.configPath != "":
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	case stored != nil:
		cfg = *stored
	default:
		cfg = config.Default()
	}

	if o.seed != 0 {
		cfg.Population.Seed = o.seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadSuite reads a stored suite with the configuration it should be processed under
func (o *options) loadSuite(name string) (suite.Suite, []scenario.Scenario, config.Config, error) {
	s, err := suite.NewManager(o.suiteDir).Load(name)
	if err != nil {
		return s, nil, config.Config{}, err
	}

	scenarios, err := s.ToScenarios()
	if err != nil {
		return s, nil, config.Config{}, fmt.Errorf("suite %s: %w", name, err)
	}

	cfg, err := o.resolveConfig(s.Config)
	return s, scenarios, cfg, err
}

// save stores scenarios under name together with their configuration
func (o *options) save(name string, cfg config.Config, scenarios []scenario.Scenario, points bool) error {
	s := suite.FromScenarios(scenarios)
	s.Seed = cfg.Population.Seed
	s.Config = &cfg

	if points {
		if err := s.AttachPoints(cfg.Codec()); err != nil {
			return err
		}
	}
	return suite.NewManager(o.suiteDir).Save(name, s)
}

func runGenerate(ctx context.Context, opts *options, count int, out string, points bool, w io.Writer) error {
	cfg, err := opts.resolveConfig(nil)
	if err != nil {
		return err
	}
	if count <= 0 {
		count = cfg.Population.Size
	}

	adapter, err := population.New(cfg)
	if err != nil {
		return err
	}

	scenarios, err := adapter.Generate(ctx, count)
	if err != nil {
		return err
	}
	if err := opts.save(out, cfg, scenarios, points); err != nil {
		return err
	}

	log.Printf("generate: %d scenarios saved as %s", len(scenarios), out)
	fmt.Fprintf(w, "generated %d scenarios -> %s\n", len(scenarios), suite.NewManager(opts.suiteDir).FilePath(out))
	return nil
}

func runValidate(opts *options, name string, w io.Writer) error {
	_, scenarios, cfg, err := opts.loadSuite(name)
	if err != nil {
		return err
	}

	adapter, err := population.New(cfg)
	if err != nil {
		return err
	}

	invalid := 0
	for i, err := range adapter.Validate(scenarios) {
		status := "ok"
		if err != nil {
			status = err.Error()
			invalid++
		}
		fmt.Fprintf(w, "%4d  %-3d  %s\n", i, len(scenarios[i]), status)
	}
	fmt.Fprintf(w, "%d/%d valid\n", len(scenarios)-invalid, len(scenarios))

	if invalid > 0 {
		return fmt.Errorf("%s: %d of %d: %w", name, invalid, len(scenarios), errInvalidScenarios)
	}
	return nil
}

func runMutate(opts *options, name, out string, w io.Writer) error {
	s, scenarios, cfg, err := opts.loadSuite(name)
	if err != nil {
		return err
	}

	adapter, err := population.New(cfg)
	if err != nil {
		return err
	}

	mutated := adapter.Mutate(scenarios)
	changed := 0
	for i := range mutated {
		if !mutated[i].Equal(scenarios[i]) {
			changed++
		}
	}

	if err := opts.save(out, cfg, mutated, hasPoints(s)); err != nil {
		return err
	}
	fmt.Fprintf(w, "mutated %d of %d scenarios -> %s\n", changed, len(mutated), out)
	return nil
}

func runCrossover(opts *options, name, out string, w io.Writer) error {
	s, scenarios, cfg, err := opts.loadSuite(name)
	if err != nil {
		return err
	}

	adapter, err := population.New(cfg)
	if err != nil {
		return err
	}

	pairs := make([][2]scenario.Scenario, 0, len(scenarios)/2)
	for i := 0; i+1 < len(scenarios); i += 2 {
		pairs = append(pairs, [2]scenario.Scenario{scenarios[i], scenarios[i+1]})
	}

	children := make([]scenario.Scenario, 0, len(scenarios))
	for _, kids := range adapter.Crossover(pairs) {
		children = append(children, kids[0], kids[1])
	}
	// an odd trailing scenario has no partner
	if len(scenarios)%2 == 1 {
		children = append(children, scenarios[len(scenarios)-1].Clone())
	}

	if err := opts.save(out, cfg, children, hasPoints(s)); err != nil {
		return err
	}
	fmt.Fprintf(w, "recombined %d pairs -> %s\n", len(pairs), out)
	return nil
}

func hasPoints(s suite.Suite) bool {
	for _, sc := range s.Scenarios {
		if len(sc.Points) > 0 {
			return true
		}
	}
	return false
}
