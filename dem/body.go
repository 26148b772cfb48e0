// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dem models the boundary of the host discrete-element engine: bodies,
// bonded contacts, the step counter and the hooks driving the crack monitor
package dem

// BodyKind distinguishes the two kinds of bodies a bond can join
type BodyKind int

const (
	BallBody  BodyKind = iota + 1 // spherical particle (disc in 2D)
	FacetBody                     // boundary-wall facet
)

// BodyRef is a validity-checked handle to a body. The referenced body may be
// removed from the domain at any time; holders must go through Domain.FindBall
// or Domain.FindFacet on every dereference and handle a nil result.
type BodyRef struct {
	Kind BodyKind // ball or facet
	Id   int      // body id; never reused after removal
}

// Ball is a spherical particle (disc in 2D)
type Ball struct {
	Id int       // id
	X  []float64 // centre [ndim]
	R  float64   // radius
}

// Facet is one planar piece of a boundary wall: a segment in 2D or a triangle
// in 3D
type Facet struct {
	Id int         // id
	V  [][]float64 // vertices: [2][ndim] segment or [3][3] triangle
}

// Nearest returns the point on this facet closest to x
func (o *Facet) Nearest(x []float64) []float64 {
	if len(o.V) == 2 {
		return nearestOnSegment(o.V[0], o.V[1], x)
	}
	return nearestOnTriangle(o.V[0], o.V[1], o.V[2], x)
}
