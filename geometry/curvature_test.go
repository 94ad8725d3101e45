package geometry

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestEstimateCurvature_Circle(t *testing.T) {
	const radius = 10.0
	road := arc(orb.Point{100, 100}, radius, 0, math.Pi, 200)

	kappa := EstimateCurvature(road)
	if len(kappa) != len(road) {
		t.Fatalf("expected %d samples, got %d", len(road), len(kappa))
	}

	// interior samples use central differences and track 1/r closely
	for i := 2; i < len(kappa)-2; i++ {
		if math.Abs(kappa[i]-1/radius) > 1e-3 {
			t.Fatalf("sample %d: curvature %v, want %v", i, kappa[i], 1/radius)
		}
	}

	// clockwise traversal flips the sign
	if k := EstimateCurvature(reverse(road))[100]; k > -0.099 {
		t.Errorf("expected negative curvature for clockwise arc, got %v", k)
	}
}

func TestEstimateCurvature_StraightLine(t *testing.T) {
	road := orb.LineString{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	for i, k := range EstimateCurvature(road) {
		if k != 0 {
			t.Errorf("sample %d: expected 0, got %v", i, k)
		}
	}
}

func TestIsTooSharp(t *testing.T) {
	gentle := arc(orb.Point{100, 100}, 50, 0, 1, 100)
	if IsTooSharp(gentle, 0.2) {
		t.Errorf("radius 50 arc reported too sharp (max %v)", MaxAbsCurvature(gentle))
	}

	tight := arc(orb.Point{100, 100}, 4, 0, 2, 100)
	if !IsTooSharp(tight, 0.2) {
		t.Errorf("radius 4 arc not reported too sharp (max %v)", MaxAbsCurvature(tight))
	}
}

func TestMaxAbsCurvature_IgnoresRepeatedPoints(t *testing.T) {
	road := orb.LineString{{0, 0}, {0, 0}, {0, 0}}
	if got := MaxAbsCurvature(road); got != 0 {
		t.Errorf("expected 0 for degenerate input, got %v", got)
	}
}
