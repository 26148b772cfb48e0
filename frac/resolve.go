// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jkfurtney/2021-ARMA-frac/dem"
)

// DegenTol scales the near-total-overlap threshold of the synthetic-contact
// derivation: separations d <= DegenTol*r1 take the fallback normal
const DegenTol = 1e-6

// Resolve refreshes the position, normal and gap of crack c. Three tiers:
//  1. the originating contact still exists => read the contact geometry;
//  2. the contact is gone but both parents exist => derive a synthetic contact
//     as if a fresh one were created between the parents;
//  3. at least one parent is gone => the crack is orphaned and every geometry
//     field keeps its last value, now and on all later calls.
func (o *Monitor) Resolve(c *Crack) {

	c.Orphan = true

	// tier 1: originating contact still present
	if ct := o.dom.FindContact(c.Contact); ct != nil {
		c.Orphan = false
		switch c.Kind {
		case dem.FlatJoint:
			e := ct.Elems[c.Elem]
			copy(c.X, e.X)
			copy(c.N, ct.N)
			c.Gap = e.Gap
		case dem.SmoothJoint:
			copy(c.X, ct.X)
			copy(c.N, ct.JointN)
			c.Gap = ct.JointGap
		case dem.ContactBond, dem.ParallelBond, dem.SoftBond:
			copy(c.X, ct.X)
			copy(c.N, ct.N)
			c.Gap = ct.Gap - ct.RefGap
		default:
			chk.Panic("crack %q refers to contact %d with unsupported bond kind %d", c.Label, c.Contact, c.Kind)
		}
		return
	}

	// tier 2: synthetic contact between the two parents
	b1 := o.dom.FindBall(c.End1)
	if b1 == nil {
		return // orphaned
	}
	var d float64
	dir := make([]float64, len(c.X))
	switch c.End2.Kind {
	case dem.BallBody:
		b2 := o.dom.FindBall(c.End2.Id)
		if b2 == nil {
			return // orphaned
		}
		for i := 0; i < len(dir); i++ {
			dir[i] = b2.X[i] - b1.X[i]
			d += dir[i] * dir[i]
		}
		d = math.Sqrt(d)
		c.Gap = d - (b1.R + b2.R)
	case dem.FacetBody:
		f := o.dom.FindFacet(c.End2.Id)
		if f == nil {
			return // orphaned
		}
		x := f.Nearest(b1.X)
		for i := 0; i < len(dir); i++ {
			dir[i] = x[i] - b1.X[i]
			d += dir[i] * dir[i]
		}
		d = math.Sqrt(d)
		c.Gap = d - b1.R
	default:
		chk.Panic("crack %q has second parent with unsupported body kind %d", c.Label, c.End2.Kind)
	}
	c.Orphan = false

	// normal: separation direction, or the fallback axis on near-total overlap
	if d <= DegenTol*b1.R {
		for i := 1; i < len(c.N); i++ {
			c.N[i] = 0
		}
		c.N[0] = 1
	} else {
		for i := 0; i < len(c.N); i++ {
			c.N[i] = dir[i] / d
		}
	}

	// position: on the synthetic contact plane, halfway into the gap
	for i := 0; i < len(c.X); i++ {
		c.X[i] = b1.X[i] + (b1.R+0.5*c.Gap)*c.N[i]
	}
}
