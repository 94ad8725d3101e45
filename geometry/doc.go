// Package geometry is the road validity kernel: bounds containment, polyline
// self-intersection, discrete curvature and spline densification.
//
// Every function is pure. Polylines are orb.LineString values so they can be
// handed to any orb-based consumer without conversion.
package geometry
