package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// arc samples a counter-clockwise circle arc of radius r around c
func arc(c orb.Point, r, from, to float64, n int) orb.LineString {
	pts := make(orb.LineString, n)
	for i := range pts {
		a := from + (to-from)*float64(i)/float64(n-1)
		pts[i] = orb.Point{c[0] + r*math.Cos(a), c[1] + r*math.Sin(a)}
	}
	return pts
}

func translate(points orb.LineString, dx, dy float64) orb.LineString {
	out := make(orb.LineString, len(points))
	for i, p := range points {
		out[i] = orb.Point{p[0] + dx, p[1] + dy}
	}
	return out
}

func reverse(points orb.LineString) orb.LineString {
	out := make(orb.LineString, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}
