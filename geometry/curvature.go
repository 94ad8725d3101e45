package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// gradient is the second-order central difference of f with unit spacing,
// first-order one-sided at both ends
func gradient(f []float64) []float64 {
	n := len(f)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = f[1] - f[0]
	g[n-1] = f[n-1] - f[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = (f[i+1] - f[i-1]) / 2
	}
	return g
}

// EstimateCurvature returns the signed discrete curvature at every point:
// (dx*ddy - dy*ddx) / (dx^2 + dy^2)^1.5 from finite differences.
// The estimate is only meaningful on dense, smooth input; use Densify first.
func EstimateCurvature(points orb.LineString) []float64 {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p[0], p[1]
	}

	dx, dy := gradient(xs), gradient(ys)
	ddx, ddy := gradient(dx), gradient(dy)

	kappa := make([]float64, len(points))
	for i := range kappa {
		speedSq := dx[i]*dx[i] + dy[i]*dy[i]
		kappa[i] = (dx[i]*ddy[i] - dy[i]*ddx[i]) / math.Pow(speedSq, 1.5)
	}
	return kappa
}

// MaxAbsCurvature returns the largest finite |curvature|, 0 when none is finite
func MaxAbsCurvature(points orb.LineString) float64 {
	peak := 0.0
	for _, k := range EstimateCurvature(points) {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			continue
		}
		peak = max(peak, math.Abs(k))
	}
	return peak
}

// IsTooSharp reports whether max |curvature| reaches maxCurvature
func IsTooSharp(points orb.LineString, maxCurvature float64) bool {
	return MaxAbsCurvature(points) >= maxCurvature
}
