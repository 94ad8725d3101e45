// Package frenet integrates per-step curvature into a Cartesian road.
package frenet

import (
	"math"

	"github.com/paulmach/orb"
)

// RoadPoint is a Cartesian pose on the road centerline, heading in radians
type RoadPoint struct {
	X, Y    float64
	Heading float64
}

// Point projects the pose onto the plane
func (p RoadPoint) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Polyline is an ordered sequence of road poses
type Polyline []RoadPoint

// XY returns the planar projection used by the geometry kernel
func (pl Polyline) XY() orb.LineString {
	ls := make(orb.LineString, len(pl))
	for i, p := range pl {
		ls[i] = p.Point()
	}
	return ls
}

// Builder grows a polyline from an initial pose by constant-curvature steps.
// State is transient: one Builder serves one build.
type Builder struct {
	startX, startY float64
	x, y, heading  float64
	points         Polyline
}

// NewBuilder starts at the center of a square map, heading along +x
func NewBuilder(mapSize float64) *Builder {
	b := &Builder{startX: mapSize / 2, startY: mapSize / 2}
	b.Reset()
	return b
}

// Reset discards emitted points and returns to the start pose
func (b *Builder) Reset() {
	b.x, b.y, b.heading = b.startX, b.startY, 0
	b.points = b.points[:0]
}

// Advance moves stepSize along the current heading, then turns by curvature*stepSize.
// The reached pose is appended and returned.
func (b *Builder) Advance(curvature, stepSize float64) RoadPoint {
	b.x += stepSize * math.Cos(b.heading)
	b.y += stepSize * math.Sin(b.heading)
	b.heading += curvature * stepSize

	p := RoadPoint{X: b.x, Y: b.y, Heading: b.heading}
	b.points = append(b.points, p)
	return p
}

// Build advances once per curvature value with a fixed step
func (b *Builder) Build(curvatures []float64, stepSize float64) Polyline {
	for _, k := range curvatures {
		b.Advance(k, stepSize)
	}
	return b.Points()
}

// Points returns a copy of the emitted polyline
func (b *Builder) Points() Polyline {
	out := make(Polyline, len(b.points))
	copy(out, b.points)
	return out
}

// Len returns the number of emitted points
func (b *Builder) Len() int {
	return len(b.points)
}

// Pose returns the current position and heading
func (b *Builder) Pose() RoadPoint {
	return RoadPoint{X: b.x, Y: b.y, Heading: b.heading}
}

// Generate is the one-shot form of Build from the map center
func Generate(curvatures []float64, stepSize, mapSize float64) Polyline {
	return NewBuilder(mapSize).Build(curvatures, stepSize)
}
