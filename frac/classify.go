// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jkfurtney/2021-ARMA-frac/dem"
)

// BondCode returns the short type code of a bond kind
func BondCode(kind dem.BondKind) (code string, err error) {
	switch kind {
	case dem.ContactBond:
		return "CB", nil
	case dem.ParallelBond:
		return "PB", nil
	case dem.SoftBond:
		return "SB", nil
	case dem.FlatJoint:
		return "FJ", nil
	case dem.SmoothJoint:
		return "SJ", nil
	}
	return "", chk.Err("bond kind %d is not supported", kind)
}

// CrackLabel builds the primary crack label from bond kind and failure mode
func CrackLabel(kind dem.BondKind, tensile bool) (label string, err error) {
	code, err := BondCode(kind)
	if err != nil {
		return
	}
	mode := "shear"
	if tensile {
		mode = "ten"
	}
	return io.Sf("%s-%sFail", code, mode), nil
}

// Counts holds the running crack counters: one aggregate plus one counter per
// (bond kind, failure mode) pair. Counters only grow, except on Reset.
type Counts struct {
	All     int // aggregate
	CBten   int // contact-bonded, tensile
	CBshear int // contact-bonded, shear
	PBten   int // parallel-bonded, tensile
	PBshear int // parallel-bonded, shear
	SBten   int // soft-bonded, tensile
	SBshear int // soft-bonded, shear
	FJten   int // flat-jointed, tensile
	FJshear int // flat-jointed, shear
	SJten   int // smooth-jointed, tensile
	SJshear int // smooth-jointed, shear
}

// Incr increments the counter matching (kind, tensile) and the aggregate
func (o *Counts) Incr(kind dem.BondKind, tensile bool) (err error) {
	switch kind {
	case dem.ContactBond:
		if tensile {
			o.CBten++
		} else {
			o.CBshear++
		}
	case dem.ParallelBond:
		if tensile {
			o.PBten++
		} else {
			o.PBshear++
		}
	case dem.SoftBond:
		if tensile {
			o.SBten++
		} else {
			o.SBshear++
		}
	case dem.FlatJoint:
		if tensile {
			o.FJten++
		} else {
			o.FJshear++
		}
	case dem.SmoothJoint:
		if tensile {
			o.SJten++
		} else {
			o.SJshear++
		}
	default:
		return chk.Err("bond kind %d is not supported", kind)
	}
	o.All++
	return
}

// Sum returns the sum of the 10 per-(kind,mode) counters; always equal to All
func (o *Counts) Sum() int {
	return o.CBten + o.CBshear + o.PBten + o.PBshear + o.SBten + o.SBshear +
		o.FJten + o.FJshear + o.SJten + o.SJshear
}

// Reset zeroes all counters
func (o *Counts) Reset() {
	*o = Counts{}
}
