package geometry

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/lixenwraith/roadgen/parameter"
)

// Road violations reported by Check
var (
	ErrTooShort         = errors.New("road has fewer than 3 points")
	ErrOutOfBounds      = errors.New("road leaves the map")
	ErrSelfIntersecting = errors.New("road crosses itself")
	ErrTooSharp         = errors.New("road curvature exceeds the limit")
)

// Options parameterizes the validity oracle
type Options struct {
	MapSize               float64
	MaxCurvature          float64
	InterpolationDistance float64
	MinNodes              int
}

// DefaultOptions returns the oracle thresholds for a map of the given size
func DefaultOptions(mapSize float64) Options {
	return Options{
		MapSize:               mapSize,
		MaxCurvature:          parameter.MaxCurvature,
		InterpolationDistance: parameter.InterpolationDistance,
		MinNodes:              parameter.MinInterpolationNodes,
	}
}

// IsValidRoad reports whether the polyline is simple, inside the map, has at
// least three points and is not too sharp once densified
func IsValidRoad(points orb.LineString, opts Options) bool {
	return Oracle{Policy: PolicyBoundaryAndCurvature, Options: opts}.Check(points) == nil
}

// Policy selects which checks the Oracle applies
type Policy string

const (
	// PolicyBoundaryOnly checks point count, bounds and simplicity on the coarse polyline
	PolicyBoundaryOnly Policy = "boundary_only"
	// PolicyBoundaryAndCurvature additionally densifies and rejects sharp roads
	PolicyBoundaryAndCurvature Policy = "boundary_and_curvature"
)

// ErrUnknownPolicy is returned when parsing an unrecognized policy name
var ErrUnknownPolicy = errors.New("unknown validity policy")

// ParsePolicy resolves a policy name
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyBoundaryOnly, PolicyBoundaryAndCurvature:
		return p, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// Oracle is the configured validity predicate shared by generation and evaluation
type Oracle struct {
	Policy  Policy
	Options Options
}

// Check returns nil for a valid road or the first violated rule
func (o Oracle) Check(points orb.LineString) error {
	if len(points) < 3 {
		return ErrTooShort
	}
	if !IsInsideBounds(points, o.Options.MapSize) {
		return ErrOutOfBounds
	}
	if !IsSimple(points) {
		return ErrSelfIntersecting
	}
	if o.Policy == PolicyBoundaryOnly {
		return nil
	}

	dense, err := Densify(points, o.Options.InterpolationDistance, o.Options.MinNodes)
	if err != nil {
		return err
	}
	if IsTooSharp(dense, o.Options.MaxCurvature) {
		return ErrTooSharp
	}
	return nil
}

// Valid reports whether Check passes
func (o Oracle) Valid(points orb.LineString) bool {
	return o.Check(points) == nil
}
