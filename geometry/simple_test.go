package geometry

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestIsSimple_CrossingDiagonals(t *testing.T) {
	// (0,0)->(10,10) and (0,10)->(10,0) joined by a vertical link
	road := orb.LineString{{0, 0}, {10, 10}, {0, 10}, {10, 0}}
	if IsSimple(road) {
		t.Error("expected crossing diagonals to be non-simple")
	}
}

func TestIsSimple_AdjacentSegmentsIgnored(t *testing.T) {
	// sharp hairpin: consecutive segments share a vertex and fold back
	road := orb.LineString{{0, 0}, {10, 0}, {0, 0.5}}
	if !IsSimple(road) {
		t.Error("adjacent segments must not be reported as crossing")
	}
}

func TestIsSimple_TouchingIsNotCrossing(t *testing.T) {
	// third segment ends exactly on the first one
	road := orb.LineString{{0, 0}, {10, 0}, {10, 5}, {5, 0}}
	if !IsSimple(road) {
		t.Error("touching without crossing must stay simple")
	}
}

func TestIsSimple_Spiral(t *testing.T) {
	road := orb.LineString{{0, 0}, {10, 0}, {10, 10}, {2, 10}, {2, 2}, {8, 2}, {8, 8}}
	if !IsSimple(road) {
		t.Error("inward spiral should be simple")
	}

	closing := append(road.Clone(), orb.Point{5, -5})
	if IsSimple(closing) {
		t.Error("leaving the spiral through its first leg must cross")
	}
}

func TestIsSimple_ReversalAndTranslation(t *testing.T) {
	roads := []orb.LineString{
		{{0, 0}, {10, 10}, {0, 10}, {10, 0}},
		{{0, 0}, {10, 0}, {10, 10}, {2, 10}, {2, 2}, {8, 2}, {8, 8}},
		{{0, 0}, {5, 5}, {10, 0}, {15, 5}, {20, 0}},
		arc(orb.Point{50, 50}, 20, 0, 5, 40),
		arc(orb.Point{50, 50}, 20, 0, 7, 60),
	}

	for i, road := range roads {
		want := IsSimple(road)
		if got := IsSimple(reverse(road)); got != want {
			t.Errorf("road %d: reversed=%v, forward=%v", i, got, want)
		}
		if got := IsSimple(translate(road, 137.5, -42.25)); got != want {
			t.Errorf("road %d: translated=%v, original=%v", i, got, want)
		}
	}
}

func TestIsSimple_Degenerate(t *testing.T) {
	for _, road := range []orb.LineString{nil, {{1, 1}}, {{1, 1}, {2, 2}}} {
		if !IsSimple(road) {
			t.Errorf("expected %v to be simple", road)
		}
	}
}
