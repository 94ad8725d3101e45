package geometry

import "github.com/paulmach/orb"

// orient is the signed area of triangle (a, b, c): >0 counter-clockwise, <0 clockwise
func orient(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// segmentsCross reports a proper crossing of (a,b) and (c,d).
// Touching endpoints and collinear overlap yield a zero orientation and do not count.
func segmentsCross(a, b, c, d orb.Point) bool {
	return orient(a, b, c)*orient(a, b, d) < 0 &&
		orient(c, d, a)*orient(c, d, b) < 0
}

// IsSimple reports whether no two non-adjacent segments of the polyline cross
func IsSimple(points orb.LineString) bool {
	n := len(points)
	for i := 0; i < n-1; i++ {
		// j starts at i+2: segment i+1 shares points[i+1] with segment i
		for j := i + 2; j < n-1; j++ {
			if segmentsCross(points[i], points[i+1], points[j], points[j+1]) {
				return false
			}
		}
	}
	return true
}
