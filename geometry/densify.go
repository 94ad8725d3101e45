package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/interp"

	"github.com/lixenwraith/roadgen/parameter"
)

var (
	// ErrTooFewPoints is returned when a curve is requested through fewer than two points
	ErrTooFewPoints = errors.New("at least two points are required to define a road")
	// ErrDegenerateSegment is returned when consecutive points coincide
	ErrDegenerateSegment = errors.New("consecutive road points coincide")
	// ErrInvalidSpacing is returned for a non-positive interpolation distance
	ErrInvalidSpacing = errors.New("interpolation distance must be positive")
)

// curveFit is a 1-D interpolant over the chord-length parameter
type curveFit interface {
	interp.Fitter
	interp.Predictor
}

// Densify fits a smooth curve through the coarse points and resamples it at
// uniform parameter steps. The fit degree follows the point count: two points
// are joined linearly, three by a parabola, four or more by a not-a-knot cubic
// spline. The node count is max(minNodes, round(length / interpolationDistance)).
func Densify(points orb.LineString, interpolationDistance float64, minNodes int) (orb.LineString, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("densify %d point(s): %w", len(points), ErrTooFewPoints)
	}
	if interpolationDistance <= 0 {
		return nil, fmt.Errorf("densify with spacing %v: %w", interpolationDistance, ErrInvalidSpacing)
	}

	u, err := chordParams(points)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p[0], p[1]
	}

	fx, fy := newCurveFit(len(points)), newCurveFit(len(points))
	if err := fx.Fit(u, xs); err != nil {
		return nil, fmt.Errorf("fitting x(u): %w", err)
	}
	if err := fy.Fit(u, ys); err != nil {
		return nil, fmt.Errorf("fitting y(u): %w", err)
	}

	nodes := max(int(math.Round(PolylineLength(points)/interpolationDistance)), minNodes, 1)

	dense := make(orb.LineString, nodes+1)
	for i := range dense {
		t := float64(i) / float64(nodes)
		dense[i] = orb.Point{roundCoord(fx.Predict(t)), roundCoord(fy.Predict(t))}
	}
	return dense, nil
}

// chordParams returns the normalized cumulative chord length of each point, u[0]=0 and u[n-1]=1
func chordParams(points orb.LineString) ([]float64, error) {
	u := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		step := math.Hypot(points[i][0]-points[i-1][0], points[i][1]-points[i-1][1])
		if step == 0 {
			return nil, fmt.Errorf("points %d and %d: %w", i-1, i, ErrDegenerateSegment)
		}
		u[i] = u[i-1] + step
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	return u, nil
}

func newCurveFit(n int) curveFit {
	switch {
	case n == 2:
		return &interp.PiecewiseLinear{}
	case n == 3:
		return &quadratic{}
	default:
		return &interp.NotAKnotCubic{}
	}
}

var roundingScale = math.Pow(10, parameter.RoundingPrecision)

func roundCoord(v float64) float64 {
	return math.Round(v*roundingScale) / roundingScale
}

// quadratic is the Lagrange parabola through exactly three samples; gonum/interp
// has no second-degree interpolant
type quadratic struct {
	xs, ys [3]float64
}

func (q *quadratic) Fit(xs, ys []float64) error {
	if len(xs) != 3 || len(ys) != 3 {
		return fmt.Errorf("quadratic fit needs 3 samples, got %d", len(xs))
	}
	copy(q.xs[:], xs)
	copy(q.ys[:], ys)
	return nil
}

func (q *quadratic) Predict(x float64) float64 {
	x0, x1, x2 := q.xs[0], q.xs[1], q.xs[2]
	l0 := (x - x1) * (x - x2) / ((x0 - x1) * (x0 - x2))
	l1 := (x - x0) * (x - x2) / ((x1 - x0) * (x1 - x2))
	l2 := (x - x0) * (x - x1) / ((x2 - x0) * (x2 - x1))
	return q.ys[0]*l0 + q.ys[1]*l1 + q.ys[2]*l2
}
