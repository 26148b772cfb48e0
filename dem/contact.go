// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

// BondKind enumerates the bond models supported by the crack monitor
type BondKind int

const (
	ContactBond BondKind = iota + 1 // contact-bonded
	ParallelBond                    // parallel-bonded
	SoftBond                        // soft-bonded
	FlatJoint                       // flat-jointed
	SmoothJoint                     // smooth-jointed
)

// FjElem is one element of a flat-jointed contact's interface discretisation
type FjElem struct {
	X   []float64 // element centroid [ndim]
	Gap float64   // element-local gap
	L   float64   // element length (2D)
	A   float64   // element area (3D)
}

// Contact represents the mechanical interaction between two bonded bodies.
// Contacts are ephemeral: the engine removes them once the bodies separate,
// which may happen long before the crack record referring to them is read.
type Contact struct {

	// identity and endpoints
	Id   int      // id; never reused after removal
	Kind BondKind // bond model installed at this contact
	End1 int      // first body: always a ball id
	End2 BodyRef  // second body: ball or facet

	// contact-plane geometry
	X   []float64 // contact point [ndim]
	N   []float64 // contact-plane unit normal [ndim]
	Gap float64   // current surface gap

	// bond properties
	RefGap float64 // reference gap set when the bond was installed
	R      float64 // bond nominal radius (parallel/soft/smooth bonds)
	A      float64 // bond cross-section area

	// smooth joints
	JointN   []float64 // joint-plane unit normal [ndim]
	JointGap float64   // joint gap

	// flat joints
	Elems []*FjElem // interface elements
}
