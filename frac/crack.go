// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frac implements the crack (bond-breakage) monitoring subsystem: an
// append-only record of broken bonds with classification, periodic geometry
// refresh and gap-based filtering
package frac

import "github.com/jkfurtney/2021-ARMA-frac/dem"

// Crack records one bond-breakage event. A crack is created once, refreshed
// many times and never deleted except by a full Init. Size and StepFormed are
// fixed at creation; X, N, Gap and FilterLabel are frozen once the crack is
// orphaned.
type Crack struct {

	// fixed at creation
	Size       float64      // disc diameter (3D) or segment length (2D)
	Label      string       // primary group: "{code}-{ten|shear}Fail"
	Kind       dem.BondKind // bond kind of the broken bond
	Contact    int          // id of the originating contact; the contact may be gone
	Elem       int          // flat-joint element index; 0 for other kinds
	End1       int          // first parent: ball id
	End2       dem.BodyRef  // second parent: ball or facet
	StepFormed int          // step index at creation

	// refreshed while not orphaned
	X           []float64 // position [ndim]
	N           []float64 // unit normal [ndim]
	Gap         float64   // signed gap
	FilterLabel string    // secondary group; NotFiltered unless selected
	Orphan      bool      // at least one parent can no longer be resolved
}

// GetCopy returns a copy of this crack
func (o *Crack) GetCopy() *Crack {
	other := new(Crack)
	*other = *o
	other.X = make([]float64, len(o.X))
	other.N = make([]float64, len(o.N))
	copy(other.X, o.X)
	copy(other.N, o.N)
	return other
}
