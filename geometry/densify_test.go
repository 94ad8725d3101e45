package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/paulmach/orb"
)

func TestDensify_TooFewPoints(t *testing.T) {
	for _, road := range []orb.LineString{nil, {{1, 2}}} {
		_, err := Densify(road, 1, 20)
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("%d points: expected ErrTooFewPoints, got %v", len(road), err)
		}
	}
}

func TestDensify_InvalidArguments(t *testing.T) {
	road := orb.LineString{{0, 0}, {10, 0}}
	if _, err := Densify(road, 0, 20); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("expected ErrInvalidSpacing, got %v", err)
	}

	repeated := orb.LineString{{0, 0}, {5, 0}, {5, 0}, {9, 3}}
	if _, err := Densify(repeated, 1, 20); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("expected ErrDegenerateSegment, got %v", err)
	}
}

func TestDensify_LinearUsesMinNodes(t *testing.T) {
	road := orb.LineString{{0, 0}, {10, 0}}

	dense, err := Densify(road, 1, 20)
	if err != nil {
		t.Fatalf("densify failed: %v", err)
	}

	// round(10/1) = 10 < 20 nodes, so 21 samples at 0.5 spacing
	if len(dense) != 21 {
		t.Fatalf("expected 21 points, got %d", len(dense))
	}
	for i, p := range dense {
		want := [2]float64{float64(i) * 0.5, 0}
		diff(t, want, [2]float64(p), cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestDensify_NodeCountFollowsLength(t *testing.T) {
	road := orb.LineString{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}, {50, 0}}

	dense, err := Densify(road, 1, 20)
	if err != nil {
		t.Fatalf("densify failed: %v", err)
	}
	if len(dense) != 51 {
		t.Fatalf("expected 51 points, got %d", len(dense))
	}

	// a cubic through collinear samples stays on the line
	for i, p := range dense {
		if math.Abs(p[1]) > 1e-9 || math.Abs(p[0]-float64(i)) > 1e-6 {
			t.Fatalf("sample %d off the line: %v", i, p)
		}
	}
}

func TestDensify_QuadraticPassesThroughSamples(t *testing.T) {
	road := orb.LineString{{0, 0}, {10, 10}, {20, 0}}

	dense, err := Densify(road, 1, 20)
	if err != nil {
		t.Fatalf("densify failed: %v", err)
	}

	diff(t, road[0], dense[0])
	diff(t, road[2], dense[len(dense)-1])

	// the apex must be reached by some sample, never overshot by much
	peak := 0.0
	for _, p := range dense {
		peak = max(peak, p[1])
	}
	if peak < 9.9 || peak > 10.5 {
		t.Errorf("expected apex near 10, got %v", peak)
	}
}

func TestDensify_CubicKeepsEndpointsAndRounds(t *testing.T) {
	road := arc(orb.Point{100, 100}, 30, 0, 1.5, 8)

	dense, err := Densify(road, 1, 20)
	if err != nil {
		t.Fatalf("densify failed: %v", err)
	}

	// orb.Point has an Equal method that cmp prefers over options, so compare raw arrays
	approx := cmpopts.EquateApprox(0, 1e-3)
	diff(t, [2]float64(road[0]), [2]float64(dense[0]), approx)
	diff(t, [2]float64(road[len(road)-1]), [2]float64(dense[len(dense)-1]), approx)

	for i, p := range dense {
		for _, v := range p {
			if math.Abs(v*1000-math.Round(v*1000)) > 1e-6 {
				t.Fatalf("sample %d not rounded to 3 decimals: %v", i, p)
			}
		}
	}

	if k := MaxAbsCurvature(dense); math.Abs(k-1.0/30) > 0.01 {
		t.Errorf("expected curvature close to 1/30, got %v", k)
	}
}
