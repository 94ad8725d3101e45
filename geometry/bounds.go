package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MapBound returns the square [0, mapSize] x [0, mapSize]
func MapBound(mapSize float64) orb.Bound {
	return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{mapSize, mapSize}}
}

// IsInsideBounds reports whether every point lies on or inside the map square
func IsInsideBounds(points orb.LineString, mapSize float64) bool {
	bound := MapBound(mapSize)
	for _, p := range points {
		if !bound.Contains(p) {
			return false
		}
	}
	return true
}

// PolylineLength returns the planar length of the polyline
func PolylineLength(points orb.LineString) float64 {
	return planar.Length(points)
}
